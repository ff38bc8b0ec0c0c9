package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"protocol_dir":  ".asimov",
		"project_name":  "",
		"project_type":  "",
		"log_level":     "warn",
		"show_diff":     false,
		"show_progress": true,
		"no_color":      false,
	}
}
