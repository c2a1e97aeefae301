// Package plugin holds the registry of contract plugins a host can
// instantiate.
//
// A plugin is a contract type C paired with a wrapper type W that decodes
// from JSON and unwraps into C, plus a manifest and a logo asset. Plugins
// register themselves from init, usually into Default:
//
//	//go:embed logo.png
//	var assets embed.FS
//
//	func init() {
//		plugin.MustRegister[MyContract, Wrapper](plugin.Default, manifest, assets)
//	}
package plugin
