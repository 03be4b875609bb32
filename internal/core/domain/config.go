package domain

// HookConfig holds textual hook specifications as written by the user.
// An empty spec means no hook for that side.
type HookConfig struct {
	OnLeftPaneFinalized  string
	OnRightPaneFinalized string
}

// Merge returns c with every non-empty field of override applied on top.
func (c HookConfig) Merge(override HookConfig) HookConfig {
	if override.OnLeftPaneFinalized != "" {
		c.OnLeftPaneFinalized = override.OnLeftPaneFinalized
	}
	if override.OnRightPaneFinalized != "" {
		c.OnRightPaneFinalized = override.OnRightPaneFinalized
	}
	return c
}

// Config is the user configuration of diffdirs.
type Config struct {
	Hooks HookConfig
}

// DefaultConfigRelPath is the config location relative to the XDG config home.
const DefaultConfigRelPath = "diffdirs/config.yaml"

// ConfigEnvVar overrides the config path when set.
const ConfigEnvVar = "DIFFDIRS_CONFIG"
