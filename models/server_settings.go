package models

import (
	"net"
	"strconv"
)

// Mode selects the deployment variant: which stored version field and which
// networkConfig branch are served.
type Mode string

const (
	ModeCN     Mode = "cn"
	ModeGlobal Mode = "global"
)

// VersionKeys returns the document keys holding the client version for the
// mode. Every mode other than global reads the cn field.
func (m Mode) VersionKeys() []string {
	if m == ModeGlobal {
		return []string{"versionGlobal", "android"}
	}
	return []string{"version", "android"}
}

// ServerSettings is the server block of the configuration document. Host and
// Port are both the bind address and the address substituted into manifests.
type ServerSettings struct {
	Mode Mode
	Host string
	Port uint64
}

// Address returns "host:port" suitable for net.Listen.
func (s ServerSettings) Address() string {
	return net.JoinHostPort(s.Host, strconv.FormatUint(s.Port, 10))
}

// URL returns the base URL that replaces the {server} token.
func (s ServerSettings) URL() string {
	return "http://" + s.Host + ":" + strconv.FormatUint(s.Port, 10)
}
