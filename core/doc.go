// Package core contains the business logic for the DocExtract API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (DocumentRequest, Document, Table, etc.)
// - extraction: Single and batch extraction orchestration
// - tables: Table grid normalization and markdown/CSV rendering
// - archive: Zip assembly of rendered extraction results
// - compare: Line-based document comparison
// - languages: The supported language catalog
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (extractor, cache, storage)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "docextract-app-api/core/extraction"
//	    "docextract-app-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	service := extraction.NewService(deps, myExtractor, extraction.DefaultServiceOptions())
//
//	// Extract a document
//	outcome := service.Process(ctx, domain.DocumentRequest{
//	    Filename: "report.pdf",
//	    Content:  payload,
//	})
package core
