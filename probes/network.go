package probes

import (
	"net"

	"code.cloudfoundry.org/lager/v3"

	"syshealth/model"
)

// DefaultEndpoint is a well-known public DNS endpoint used for the
// reachability test.
const DefaultEndpoint = "8.8.8.8:53"

// Dialer matches net.Dialer's Dial.
type Dialer interface {
	Dial(network, address string) (net.Conn, error)
}

type NetworkProbe struct {
	dialer   Dialer
	endpoint string
}

func NewNetworkProbe(dialer Dialer, endpoint string) *NetworkProbe {
	return &NetworkProbe{dialer: dialer, endpoint: endpoint}
}

// Collect performs a single TCP dial against the configured endpoint. A
// failed dial means the internet is unreachable; it never fails the run.
func (p *NetworkProbe) Collect(logger lager.Logger) model.NetworkStatus {
	logger = logger.Session("network-probe", lager.Data{"endpoint": p.endpoint})
	logger.Debug("starting")
	defer logger.Debug("ending")

	conn, err := p.dialer.Dial("tcp", p.endpoint)
	if err != nil {
		logger.Info("unreachable", lager.Data{"error": err.Error()})
		return model.NetworkStatus{InternetConnected: false}
	}
	conn.Close()

	logger.Debug("reachable")
	return model.NetworkStatus{InternetConnected: true}
}
