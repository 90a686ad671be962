package commands

import (
	"encoding/hex"
	"fmt"

	secp256k1 "github.com/ModChain/hdsecp256k1"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewVerifyCmd produces a VerifyCmd which checks a signature
func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [public key hex] [hash hex] [signature hex]",
		Short: "Verify a 64-byte R || S signature",
		Args:  cobra.ExactArgs(3),
		RunE:  verify,
	}
	cmd.Flags().Bool("strict", false, "Reject signatures with a high S value")
	return cmd
}

func verify(cmd *cobra.Command, args []string) error {
	pubBytes, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("public key: %w", err)
	}
	pub, err := secp256k1.ParsePubKey(pubBytes)
	if err != nil {
		return err
	}
	hash, err := decodeHash(args[1])
	if err != nil {
		return err
	}
	sigBytes, err := hex.DecodeString(args[2])
	if err != nil {
		return fmt.Errorf("signature: %w", err)
	}
	sig, err := secp256k1.ParseSignature(sigBytes)
	if err != nil {
		return err
	}

	if _config.Strict {
		err = secp256k1.VerifyStrict(pub, hash, sig)
	} else {
		err = secp256k1.VerifySignature(pub, hash, sig)
	}
	if err != nil {
		logger.WithFields(logrus.Fields{
			"prefix": "verify",
			"error":  err,
		}).Debug("Signature rejected")
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "OK")
	return nil
}
