package nets

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/net/proxy"
)

type HTTPClient = *http.Client

// HTTPClient sends http(s) proxies through Transport.Proxy and dials socks proxies
// with x/net/proxy. Local addresses always connect directly.
func (Module) HTTPClient(
	proxyURL ProxyURL,
) HTTPClient {
	direct := &net.Dialer{
		Timeout: 30 * time.Second,
	}

	getDialer := sync.OnceValues(func() (proxy.ContextDialer, error) {
		u, err := proxyURL()
		if err != nil {
			return nil, err
		}
		if u == nil || !isSocks(u) {
			return direct, nil
		}
		socks, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		perHost := proxy.NewPerHost(socks, direct)
		bypassLocal(perHost)
		return perHost, nil
	})

	return &http.Client{
		Transport: &http.Transport{
			Proxy: func(req *http.Request) (*url.URL, error) {
				u, err := proxyURL()
				if err != nil || u == nil || isSocks(u) {
					return nil, err
				}
				if isLocalHost(req.URL.Hostname()) {
					return nil, nil
				}
				return u, nil
			},
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				dialer, err := getDialer()
				if err != nil {
					return nil, err
				}
				return dialer.DialContext(ctx, network, addr)
			},
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
		},
	}
}
