package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	sphinxpacket "github.com/sphinxmix/sphinx-packet"
	"github.com/sphinxmix/sphinx-packet/header/delays"
	"github.com/sphinxmix/sphinx-packet/internal/primitives"
	"github.com/sphinxmix/sphinx-packet/route"
)

const (
	BOB     = "bob"
	CHARLIE = "charlie"
	DAVE    = "dave"
)

// Fixed demo private keys, one per hop, so that a packet built by one
// "build" invocation can be unwrapped by a separate "unwrap" invocation -
// each run of the CLI would otherwise mint a fresh random key pair and the
// two processes could never agree on a shared secret.
const (
	bobKeyHex     = "111111111111111111111111111111111111111111111111111111111111111a"
	charlieKeyHex = "222222222222222222222222222222222222222222222222222222222222222b"
	daveKeyHex    = "333333333333333333333333333333333333333333333333333333333333333c"
)

var hopKeys map[string]sphinxpacket.PrivateKey
var hopNodes map[string]route.Node

func setupKeys(ctx *cli.Context) error {
	hopKeys = make(map[string]sphinxpacket.PrivateKey)
	hopNodes = make(map[string]route.Node)

	names := []string{BOB, CHARLIE, DAVE}
	keyHexes := []string{bobKeyHex, charlieKeyHex, daveKeyHex}

	for i, name := range names {
		keyBytes, err := hex.DecodeString(keyHexes[i])
		if err != nil {
			return fmt.Errorf("could not decode fixed demo key for %s: %v", name, err)
		}

		var sk primitives.Scalar
		copy(sk[:], keyBytes)

		pk, err := primitives.ScalarBaseMult(sk)
		if err != nil {
			return err
		}

		var addr route.NodeAddress
		addr[0] = byte(i + 1)
		hopKeys[name] = sk
		hopNodes[name] = route.NewNode(addr, pk)
	}
	return nil
}

func main() {
	app := cli.App{
		Name: "sphinx",
		Commands: []*cli.Command{
			buildCmd,
			unwrapCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var buildCmd = &cli.Command{
	Name:   "build",
	Usage:  "build a packet routed through bob, charlie and dave",
	Before: setupKeys,
	Action: buildPacket,
}

func buildPacket(ctx *cli.Context) error {
	fmt.Println("what message do you want to send to dave:")

	reader := bufio.NewReader(os.Stdin)
	message, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("could not read input: %v", err)
	}

	r := route.Route{hopNodes[BOB], hopNodes[CHARLIE], hopNodes[DAVE]}

	var destAddr route.DestinationAddress
	copy(destAddr[:], []byte("dave@example"))
	dest := route.NewDestination(destAddr, route.SURBIdentifier{})

	ds := delays.GenerateFromAverageDuration(len(r), 100*time.Millisecond)

	p, err := sphinxpacket.New([]byte(message), r, dest, ds)
	if err != nil {
		return err
	}

	wire := p.Bytes()
	fmt.Printf("packet to pass to first hop (bob): %x\n", wire)
	return nil
}

var unwrapCmd = &cli.Command{
	Name:      "unwrap",
	Usage:     "unwrap a packet at a given hop",
	ArgsUsage: "[PACKET]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "hop",
			Usage: "specify hop (bob, charlie or dave) at which to unwrap the packet",
		},
	},
	Before: setupKeys,
	Action: unwrapPacket,
}

func unwrapPacket(ctx *cli.Context) error {
	args := ctx.Args()
	if args.Len() < 1 {
		return errors.New("pass a packet to unwrap")
	}

	hop := ctx.String("hop")
	sk, ok := hopKeys[hop]
	if !ok {
		return errors.New("invalid hop")
	}

	packetBytes, err := hex.DecodeString(args.First())
	if err != nil {
		return fmt.Errorf("error decoding packet: %v", err)
	}

	p, err := sphinxpacket.FromBytes(packetBytes)
	if err != nil {
		return err
	}

	result, err := p.Process(sk)
	if err != nil {
		return err
	}

	if result.Kind == sphinxpacket.Final {
		fmt.Printf("message for %v: %s\n", hop, result.Message)
		fmt.Println("this is the packet's final destination")
		return nil
	}

	fmt.Printf("next hop address: %x\n", result.NextAddress)
	fmt.Printf("next hop delay: %v\n", result.Delay.Duration())
	fmt.Printf("packet for the next hop: %x\n", result.NextPacket.Bytes())

	return nil
}
