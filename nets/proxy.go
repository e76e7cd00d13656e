package nets

import (
	"cmp"
	"errors"
	"fmt"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
)

// ProxyAddr is the proxy remote sources are fetched through; empty means direct.
type ProxyAddr string

var _ configs.Configurable = ProxyAddr("")

func (p ProxyAddr) ConfigExpr() string {
	return "ProxyAddr"
}

var proxyFlag = cmds.Var[string]("-proxy", "proxy for remote sources, socks5:// or http://")

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
) ProxyAddr {
	if mode == modes.ModeDevelopment {
		return ""
	}
	return ProxyAddr(cmp.Or(
		*proxyFlag,
		configs.First[string](loader, "proxy_addr"),
		os.Getenv("ALL_PROXY"),
		os.Getenv("all_proxy"),
	))
}

var ErrBadProxy = errors.New("bad proxy address")

// ProxyURL is the parsed ProxyAddr, nil for direct connections.
type ProxyURL func() (*url.URL, error)

func (Module) ProxyURL(
	addr ProxyAddr,
	logger logs.Logger,
) ProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if addr == "" {
			return nil, nil
		}
		u, err := url.Parse(string(addr))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadProxy, err)
		}
		switch u.Scheme {
		case "socks":
			u.Scheme = "socks5"
		case "socks5", "socks5h", "http", "https":
		default:
			return nil, fmt.Errorf("%w: unsupported scheme %q", ErrBadProxy, u.Scheme)
		}
		if u.Host == "" {
			return nil, fmt.Errorf("%w: no host in %q", ErrBadProxy, addr)
		}
		logger.Debug("proxy", "url", u.Redacted())
		return u, nil
	})
}

func isSocks(u *url.URL) bool {
	return u.Scheme == "socks5" || u.Scheme == "socks5h"
}
