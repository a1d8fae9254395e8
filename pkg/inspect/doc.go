// Package inspect serves a reactive tree over HTTP.
//
// The inspector exposes the current state as JSON, lets clients read and
// write values by path, lists the observer keys of the tree's registry and
// streams every mutation over a WebSocket:
//
//	GET    /state          snapshot of the root value
//	GET    /state/{path}   value at a path such as user/name or user.name
//	PUT    /state/{path}   store the JSON request body at the path
//	DELETE /state/{path}   delete the property at the path
//	GET    /keys           observer keys with listener counts
//	GET    /ws             change stream
//	GET    /metrics        Prometheus metrics, when configured
//
// # Usage
//
//	root := reactive.NewReactive(state)
//	srv := inspect.New(root, inspect.WithLogger(logger))
//	defer srv.Close()
//	err := srv.ListenAndServe(ctx, "localhost:7070")
//
// Each change stream message is a JSON object:
//
//	{"op": "set", "key": "3.name", "path": "user.name", "new": "ada", "old": "bob"}
package inspect
