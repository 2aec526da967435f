package pkg

import (
	"context"
	"fmt"
	"log"

	"github.com/nbd-wtf/go-nostr"
)

// BridgeMessage is the content of a wallet bridge event. Only transfer
// notifications are of interest here; other payloads are ignored.
type BridgeMessage struct {
	Transfer *TransferPayload `json:"Transfer,omitempty"`
}

// TransferPayload reports funds received by a wallet, denominated in
// lamports (1 lamport = 1 in-game unit).
type TransferPayload struct {
	Wallet   string `json:"wallet"`
	Lamports uint64 `json:"lamports"`
}

// transferEventKind is the event kind the bridge publishes transfers as.
const transferEventKind = 1573

// RelayClient subscribes to the relay through which the external wallet
// bridge announces deposits addressed to this world's vault.
type RelayClient struct {
	relay       *nostr.Relay
	vaultPubkey string
}

func NewRelayClient(relayURL, vaultPubkey string) (*RelayClient, error) {
	ctx := context.Background()
	relay, err := nostr.RelayConnect(ctx, relayURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to relay: %v", err)
	}

	return &RelayClient{
		relay:       relay,
		vaultPubkey: vaultPubkey,
	}, nil
}

func (c *RelayClient) Relay() *nostr.Relay {
	return c.relay
}

func (c *RelayClient) VaultPubkey() string {
	return c.vaultPubkey
}

// SubscribeTransfers invokes handler for every transfer event addressed
// to the vault, starting now. The subscription runs until ctx ends.
func (c *RelayClient) SubscribeTransfers(ctx context.Context, handler func(event nostr.Event)) error {
	since := nostr.Now()

	filters := nostr.Filters{{
		Kinds: []int{transferEventKind},
		Since: &since,
		Tags: nostr.TagMap{
			"s": []string{"gridstead-bridge"},
			"p": []string{c.vaultPubkey},
		},
	}}

	sub, err := c.relay.Subscribe(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to subscribe: %v", err)
	}

	go func() {
		defer sub.Unsub()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub.Events:
				if !ok {
					log.Println("Event channel closed")
					return
				}
				handler(*ev)
			case <-sub.EndOfStoredEvents:
				log.Println("Received EOSE")
			}
		}
	}()

	return nil
}

// Close shuts down the relay connection.
func (c *RelayClient) Close() {
	c.relay.Close()
}
