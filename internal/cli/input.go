// Package cli holds plumbing shared by the parse4880 command-line
// tools.
package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/openpgp/armor"
)

var armorPrefix = []byte("-----BEGIN PGP ")

// ReadInput reads an OpenPGP stream from path. The library only
// accepts binary streams, so ASCII armor is detected and decoded here.
func ReadInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), armorPrefix) {
		return data, nil
	}

	block, err := armor.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decoding armor")
	}
	logrus.Debugf("decoded armor block of type %q", block.Type)

	body, err := io.ReadAll(block.Body)
	if err != nil {
		return nil, errors.Wrap(err, "decoding armor")
	}
	return body, nil
}
