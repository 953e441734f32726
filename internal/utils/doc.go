// Package utils provides general-purpose helpers shared by the transport and
// adapter layers: JSON response writing, the resty-based HTTP client and
// trace id generation.
package utils
