// Package anoncreds is the Go API for libanoncreds, the anonymous
// credentials library. Every method on *Anoncreds maps onto one native
// entry point: arguments are serialized and lowered into call-scoped
// memory, the call runs under a process-wide lock, and failures are turned
// into *Error values after checking the native error slot. Objects created
// natively come back as *ObjectHandle and must be released by the caller,
// directly or through a Scope.
//
// Load the shared object with Open, or attach any native.Library
// implementation with New.
//
// Example:
//
//	a, err := anoncreds.Open(anoncreds.Config{})
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	schema, err := a.CreateSchema(ctx, &anoncreds.CreateSchemaParams{
//	    Name:           "schema-1",
//	    Version:        "1.0",
//	    IssuerID:       "mock:uri",
//	    AttributeNames: []string{"name", "age"},
//	})
//	if err != nil {
//	    return err
//	}
//	defer schema.Release()
package anoncreds
