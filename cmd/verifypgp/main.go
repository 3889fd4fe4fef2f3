// Command verifypgp walks a keyring and verifies the certification
// signatures made by each primary key: user-ID certifications and
// subkey bindings.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LachlanGunn/parse4880"
	"github.com/LachlanGunn/parse4880/internal/cli"
)

func main() {
	var verbose bool

	command := &cobra.Command{
		Use:   "verifypgp <keys>",
		Short: "Verify the certification signatures on a keyring",
		Args:  cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	command.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := command.Execute(); err != nil {
		var parseErr parse4880.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintf(os.Stderr, "Parse error:\n\t%s\n", parseErr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(path string) error {
	data, err := cli.ReadInput(path)
	if err != nil {
		return err
	}
	packets, err := parse4880.Parse(data)
	if err != nil {
		return err
	}
	logrus.Debugf("parsed %d packets from %s", len(packets), path)

	// Walk the keyring statefully: key material and user IDs set the
	// context that the signatures following them certify.
	var key *parse4880.PublicKeyPacket
	var subkey *parse4880.PublicSubkeyPacket
	var uid *parse4880.UserIDPacket
	for _, packet := range packets {
		switch p := packet.(type) {
		case *parse4880.PublicSubkeyPacket:
			subkey = p
		case *parse4880.PublicKeyPacket:
			key = p
			subkey = nil
			uid = nil
		case *parse4880.UserIDPacket:
			uid = p
		case *parse4880.SignaturePacket:
			if key == nil || !bytes.Equal(key.KeyID(), p.KeyID()) {
				continue
			}
			checkSignature(key, subkey, uid, p)
		}
	}
	return nil
}

func checkSignature(key *parse4880.PublicKeyPacket, subkey *parse4880.PublicSubkeyPacket, uid *parse4880.UserIDPacket, signature *parse4880.SignaturePacket) {
	switch signature.SignatureType() {
	case parse4880.SignatureCertificationGeneric,
		parse4880.SignatureCertificationCasual,
		parse4880.SignatureCertificationPositive:
		if uid == nil {
			logrus.Debugf("skipping certification with no user ID in scope")
			return
		}
		attester, err := parse4880.ParseKey(key)
		if err != nil {
			logrus.Warnf("cannot parse key %X: %v", key.Fingerprint(), err)
			return
		}
		verified, err := parse4880.VerifyUIDBinding(key, uid, attester, signature)
		if err != nil {
			logrus.Warnf("cannot verify certification: %v", err)
			return
		}
		fmt.Printf("Certification of %q by %X: %v\n",
			uid.UserID(), key.Fingerprint(), verified)
	case parse4880.SignatureSubkeyBinding:
		if subkey == nil {
			logrus.Debugf("skipping subkey binding with no subkey in scope")
			return
		}
		verified, err := parse4880.VerifySubkeyBinding(key, subkey, signature)
		if err != nil {
			logrus.Warnf("cannot verify subkey binding: %v", err)
			return
		}
		fmt.Printf("Subkey binding for %X: %d\n", subkey.Fingerprint(), verified)
	default:
		logrus.Debugf("skipping signature of type 0x%02x", signature.SignatureType())
	}
}
