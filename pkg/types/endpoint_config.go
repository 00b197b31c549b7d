package types

// EndpointConfig holds the desired shape of a gateway endpoint backed by a
// Lambda function.
type EndpointConfig struct {
	APIName      string
	ResourcePath string
	HTTPMethod   string
	StageName    string
	FunctionName string
}
