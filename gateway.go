package pinata

import (
	"fmt"

	"github.com/ipfs/go-cid"
)

// GatewayURL returns a dweb.link subdomain gateway URL for a pinned CID.
// Subdomain gateways need a case-insensitive CID, so CIDv0 values are
// upgraded to CIDv1.
func GatewayURL(identifier string) (string, error) {
	c, err := cid.Decode(identifier)
	if err != nil {
		return "", fmt.Errorf("parse cid %q: %w", identifier, err)
	}
	if c.Version() == 0 {
		c = cid.NewCidV1(c.Type(), c.Hash())
	}
	return fmt.Sprintf("https://%v.ipfs.dweb.link", c), nil
}
