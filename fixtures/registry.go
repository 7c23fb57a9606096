package fixtures

import (
	"fmt"

	"github.com/ledgerlens/txgraph/mixer"
	"github.com/ledgerlens/txgraph/store"
)

// defaultStarNodes is the node count used when the CLI requests the
// "star" fixture, which (unlike the others) is not parameterized by a
// mixer.Config.
const defaultStarNodes = 16

// ByName builds the canonical fixture graph named by name, applying cfg
// to every threshold-parameterized fixture. Returns an error for an
// unrecognized name.
func ByName(name string, cfg mixer.Config) (*store.GraphStore, error) {
	switch name {
	case "star":
		return Star(defaultStarNodes), nil
	case "normal_user":
		return NormalUser(cfg), nil
	case "bridge_node":
		return BridgeNode(cfg), nil
	case "exchange_hub":
		return ExchangeHub(cfg), nil
	case "strong_mixer":
		return StrongMixer(cfg), nil
	default:
		return nil, fmt.Errorf("fixtures: unknown fixture %q", name)
	}
}
