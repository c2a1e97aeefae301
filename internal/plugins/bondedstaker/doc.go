// Package bondedstaker registers the staked signer contract, in its
// operational state, as the "bonded-staker" plugin.
//
// Importing the package for side effects is enough:
//
//	import _ "stakeplug/internal/plugins/bondedstaker"
package bondedstaker
