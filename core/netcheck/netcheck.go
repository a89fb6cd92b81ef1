// Package netcheck implements the connectivity checks offered on the
// Advanced page: a SOCKS5 proxy dial test for the hyperlink proxy settings
// and a STUN query for the external IP.
package netcheck

import (
	"fmt"
	"net"
	"time"

	"github.com/pion/stun"
	"github.com/txthinking/socks5"
)

const (
	checkTimeout = 5 * time.Second

	// proxyProbeTarget is the address dialed through the proxy to prove the
	// tunnel works end to end. Port 80 is open on essentially any web host.
	proxyProbeTarget = "example.com:80"
)

// TestSocksProxy dials proxyProbeTarget through the SOCKS5 proxy at addr
// (host:port). A nil return means the proxy accepted the connection and
// relayed the dial.
func TestSocksProxy(addr string) error {
	timeoutSec := int(checkTimeout / time.Second)
	client, err := socks5.NewClient(addr, "", "", timeoutSec, timeoutSec)
	if err != nil {
		return fmt.Errorf("failed to create SOCKS5 client: %w", err)
	}

	conn, err := client.Dial("tcp", proxyProbeTarget)
	if err != nil {
		return fmt.Errorf("proxy dial failed: %w", err)
	}
	defer conn.Close()
	return nil
}

// CheckSTUN performs a STUN request to determine the external IP address.
func CheckSTUN(serverAddr string) (string, error) {
	conn, err := net.Dial("udp", serverAddr)
	if err != nil {
		return "", fmt.Errorf("failed to dial STUN server: %w", err)
	}
	defer conn.Close()

	c, err := stun.NewClient(conn)
	if err != nil {
		return "", fmt.Errorf("failed to create STUN client: %w", err)
	}
	defer c.Close()

	message := stun.MustBuild(stun.TransactionID, stun.BindingRequest)

	var xorAddr stun.XORMappedAddress
	var errResult error

	done := make(chan bool)
	go func() {
		err := c.Do(message, func(res stun.Event) {
			if res.Error != nil {
				errResult = res.Error
				return
			}
			if err := xorAddr.GetFrom(res.Message); err != nil {
				errResult = err
				return
			}
		})
		if err != nil {
			errResult = err
		}
		close(done)
	}()

	select {
	case <-done:
		if errResult != nil {
			return "", fmt.Errorf("STUN request failed: %w", errResult)
		}
		return xorAddr.IP.String(), nil
	case <-time.After(checkTimeout):
		return "", fmt.Errorf("STUN request timed out")
	}
}
