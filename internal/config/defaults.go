package config

import "capex/internal/capability"

// defaultModes mirrors a runtime where the language core registers its
// capabilities during startup, lazily initialized packages register on first
// use, and console, buffer, descriptor, object stream and windowing support
// are not present.
var defaultModes = map[capability.Kind]ModuleMode{
	capability.KindLang:                        ModuleModeEager,
	capability.KindLangInvoke:                  ModuleModeLazy,
	capability.KindNetSocket:                   ModuleModeLazy,
	capability.KindNetInetAddress:              ModuleModeEager,
	capability.KindSecurity:                    ModuleModeEager,
	capability.KindNet:                         ModuleModeEager,
	capability.KindNetURL:                      ModuleModeLazy,
	capability.KindUtilJar:                     ModuleModeLazy,
	capability.KindIO:                          ModuleModeAbsent,
	capability.KindNio:                         ModuleModeAbsent,
	capability.KindIODeleteOnExit:              ModuleModeLazy,
	capability.KindIOFileDescriptor:            ModuleModeAbsent,
	capability.KindObjectInputStream:           ModuleModeAbsent,
	capability.KindObjectInputFilter:           ModuleModeLazy,
	capability.KindObjectInputStreamReadString: ModuleModeLazy,
	capability.KindNetURI:                      ModuleModeEager,
	capability.KindAWT:                         ModuleModeAbsent,
}

// GetDefaultConfig returns the built-in configuration: one module per kind,
// info logging, and no kind allowed to overwrite.
func GetDefaultConfig() CapexConfig {
	modules := make([]ModuleConfig, 0, len(defaultModes))
	for _, k := range capability.Kinds() {
		modules = append(modules, ModuleConfig{Kind: k.String(), Mode: defaultModes[k]})
	}
	return CapexConfig{
		LogLevel: "info",
		Registry: RegistryConfig{},
		Modules:  modules,
	}
}
