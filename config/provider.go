package config

// Provider defines the api to allow configuration
// providers to expose their configuration information.
// output can be a pointer to a struct or map[string]any
type Provider interface {
	Unmarshal(path string, flat bool, output any) error
}
