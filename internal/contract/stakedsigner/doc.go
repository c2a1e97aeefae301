// Package stakedsigner implements the staked signer contract: a bond that a
// signing operator locks up and forfeits if the signing key ever leaks.
//
// The contract moves through two states. While Operational the operator can
// begin redeeming, which moves the funds into the Closing state. Once Closing,
// the redeeming key can sweep after the timeout. In either state anyone
// holding the signing key can burn the bond to fees.
package stakedsigner
