package transport

import (
	"time"

	probing "github.com/prometheus-community/pro-bing"

	"github.com/menulens/menulens-go/tool"
)

// ProbeHost sends one unprivileged ICMP echo to host and reports whether an
// answer came back within timeout. Used only to sharpen the error message
// when a translate request fails on a dead network.
func ProbeHost(host string, timeout time.Duration) bool {
	pinger, err := probing.NewPinger(host)
	if err != nil {
		tool.DefaultLogger.Debugf("Reachability probe setup failed for %s: %v", host, err)
		return true
	}
	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.SetPrivileged(false)
	if err := pinger.Run(); err != nil {
		tool.DefaultLogger.Debugf("Reachability probe failed for %s: %v", host, err)
		return true
	}
	return pinger.Statistics().PacketsRecv > 0
}
