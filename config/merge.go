package config

// mergeConfigs merges override configuration into base. Set fields in
// override win; maps are merged key by key.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.StartPath != "" {
		result.StartPath = override.StartPath
	}
	if override.ShowHidden != nil {
		v := *override.ShowHidden
		result.ShowHidden = &v
	}
	if len(override.Ignore) > 0 {
		result.Ignore = append([]string(nil), override.Ignore...)
	}
	if override.MaxFileSize != 0 {
		result.MaxFileSize = override.MaxFileSize
	}
	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Icons != "" {
		result.Icons = override.Icons
	}

	if override.Keybindings != nil {
		merged := make(KeybindingsConfig, len(result.Keybindings)+len(override.Keybindings))
		for action, keys := range result.Keybindings {
			merged[action] = keys
		}
		for action, keys := range override.Keybindings {
			merged[action] = keys
		}
		result.Keybindings = merged
	}

	result.Logging = mergeSection(result.Logging, override.Logging)

	return &result
}

// mergeSection merges free-form maps recursively; override values win.
func mergeSection(base, override map[string]interface{}) map[string]interface{} {
	if override == nil {
		return base
	}
	merged := make(map[string]interface{}, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		if baseMap, ok := merged[k].(map[string]interface{}); ok {
			if overrideMap, ok := v.(map[string]interface{}); ok {
				merged[k] = mergeSection(baseMap, overrideMap)
				continue
			}
		}
		merged[k] = v
	}
	return merged
}
