package types

// EndpointState holds the provider-side identifiers of an endpoint after
// reconciliation.
type EndpointState struct {
	APIID        string `json:"api_id"`
	ResourceID   string `json:"resource_id"`
	DeploymentID string `json:"deployment_id"`
	StageName    string `json:"stage_name"`
	FunctionArn  string `json:"function_arn"`
	InvokeURL    string `json:"invoke_url"`
}
