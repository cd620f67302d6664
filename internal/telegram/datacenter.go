package telegram

import "github.com/nazar220160/TGConvertor/internal/session"

// Default data-center addresses. The test network is a separate cluster with
// its own IPs and port.
var (
	prodAddrs = map[int]string{
		1:   "149.154.175.53",
		2:   "149.154.167.51",
		3:   "149.154.175.100",
		4:   "149.154.167.91",
		5:   "91.108.56.130",
		203: "91.105.192.100",
	}

	testAddrs = map[int]string{
		1: "149.154.175.10",
		2: "149.154.167.40",
		3: "149.154.175.117",
	}
)

const (
	prodPort = 443
	testPort = 80
)

// DataCenter resolves the default endpoint for a data center. Formats that
// must embed an explicit endpoint call this when the record carries none.
func DataCenter(dcID int, testMode bool) (addr string, port int, err error) {
	addrs, defPort := prodAddrs, prodPort
	if testMode {
		addrs, defPort = testAddrs, testPort
	}
	addr, ok := addrs[dcID]
	if !ok {
		return "", 0, session.Validationf("no default endpoint for dc_id %d (test_mode=%v)", dcID, testMode)
	}
	return addr, defPort, nil
}
