// Package api provides the REST API server for inspecting a NeXtSRGAN
// training configuration.
//
// The API is read-only with respect to the configuration file: it reports the
// loaded configuration, the learning rate schedule derived from it, the
// resolved artifact directories, and whether the file changed on disk since
// the server started. Documents submitted to the validation endpoint are
// checked and discarded.
//
// # Response Format
//
// All successful responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "ERROR_CODE",
//	    "message": "Human-readable error message",
//	    "details": { /* optional context */ }
//	  }
//	}
package api
