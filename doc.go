// Package simdash is the application-state core of a compartmental-modeling
// dashboard. Models (compartments and flows) are edited through typed
// actions dispatched to a single store; workspaces, runs and settings are
// kept in local storage; expressions are checked by a validation service and
// models are processed by a worker pool.
//
// Hosts interact with the engine through the Service façade:
//
//	srv, _ := simdash.New(simdash.DefaultConfig())
//	_ = srv.Start(ctx)
//	defer srv.Close()
//	_, _ = srv.ImportSample(ctx, "sir")
//	result, _ := srv.ValidateExpression(ctx, "beta * S * I / N")
package simdash
