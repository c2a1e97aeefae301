// Package hostclient is the HTTP client for a remote plugin host. It
// implements domain.HostClient.
package hostclient
