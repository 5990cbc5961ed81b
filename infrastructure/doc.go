// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as the extraction engine, summarization providers, caching, job
// storage, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - extractor/docling: HTTP adapter for the document-understanding engine
// - summarizer/openai: Chat-completions based summarizer
// - summarizer/gemini: Gemini (genai) based summarizer
// - cache/memory: In-memory cache built on patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - storage/sqlite: SQLite job store for extraction outcomes
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger built on sirupsen/logrus
//
// Infrastructure components are designed to be pluggable, configurable and
// testable; collaborator adapters translate transport failures into the
// core error taxonomy.
package infrastructure
