package reporter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls which services and resources the report inspects. The
// zero value is not usable; start from DefaultConfig.
type Config struct {
	// Services are the per-cluster load-balancer services to query.
	Services []string `yaml:"services"`

	// ClusterPrefix filters the cluster inventory by name prefix.
	ClusterPrefix string `yaml:"clusterPrefix"`

	// ServiceAddressPath is the jsonpath extracting ingress IPs from a service.
	ServiceAddressPath string `yaml:"serviceAddressPath"`

	// GatewayResource and GatewayName identify the HTTPS gateway object
	// queried in US regions.
	GatewayResource string `yaml:"gatewayResource"`
	GatewayName     string `yaml:"gatewayName"`

	// GatewayAddressPath is the jsonpath extracting the gateway address.
	GatewayAddressPath string `yaml:"gatewayAddressPath"`
}

// DefaultConfig returns the stock configuration for the registry fleet.
func DefaultConfig() Config {
	return Config{
		Services:           []string{"whois", "whois-canary", "epp", "epp-canary"},
		ClusterPrefix:      "nomulus-cluster",
		ServiceAddressPath: "{.status.loadBalancer.ingress[*].ip}",
		GatewayResource:    "gateways.gateway.networking.k8s.io",
		GatewayName:        "nomulus",
		GatewayAddressPath: "{.status.addresses[*].value}",
	}
}

// LoadConfig reads a YAML config file and merges it over the defaults.
// Fields absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Services) == 0 {
		return fmt.Errorf("services must not be empty")
	}
	for _, s := range c.Services {
		if s == "" {
			return fmt.Errorf("services must not contain empty names")
		}
	}
	if c.ClusterPrefix == "" {
		return fmt.Errorf("clusterPrefix must not be empty")
	}
	if c.ServiceAddressPath == "" || c.GatewayAddressPath == "" {
		return fmt.Errorf("address jsonpaths must not be empty")
	}
	if c.GatewayResource == "" || c.GatewayName == "" {
		return fmt.Errorf("gateway resource and name must not be empty")
	}
	return nil
}
