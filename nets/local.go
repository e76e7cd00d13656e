package nets

import (
	"net"

	"golang.org/x/net/proxy"
)

// never proxied
var localNetworks = func() (ret []*net.IPNet) {
	for _, cidr := range []string{
		"127.0.0.0/8",
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"::1/128",
		"fc00::/7",
	} {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			panic(err)
		}
		ret = append(ret, network)
	}
	return
}()

func isLocalHost(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	for _, network := range localNetworks {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

func bypassLocal(perHost *proxy.PerHost) {
	perHost.AddHost("localhost")
	for _, network := range localNetworks {
		perHost.AddNetwork(network)
	}
}
