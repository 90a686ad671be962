package commands

import (
	"encoding/hex"
	"fmt"

	secp256k1 "github.com/ModChain/hdsecp256k1"
	"github.com/spf13/cobra"
)

// NewSignCmd produces a SignCmd which signs a hash
func NewSignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign [private key hex] [hash hex]",
		Short: "Sign a hash, printing the 64-byte R || S signature",
		Args:  cobra.ExactArgs(2),
		RunE:  sign,
	}
}

func sign(cmd *cobra.Command, args []string) error {
	privBytes, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("private key: %w", err)
	}
	key, err := secp256k1.PrivKeyFromBytes(privBytes)
	if err != nil {
		return err
	}
	hash, err := decodeHash(args[1])
	if err != nil {
		return err
	}

	sig, err := secp256k1.Sign(key, hash)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%x\n", sig.Serialize())
	return nil
}

func decodeHash(s string) ([]byte, error) {
	hash, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hash: %w", err)
	}
	if len(hash) == 0 {
		return nil, fmt.Errorf("hash: empty")
	}
	return hash, nil
}
