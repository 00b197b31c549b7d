package types

// RouteConfig holds a single path/method pair for batch endpoint setup.
type RouteConfig struct {
	Path   string
	Method string
}
