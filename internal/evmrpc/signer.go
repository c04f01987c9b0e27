package evmrpc

import (
	"crypto/ecdsa"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/cosmos/go-bip39"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// Signer derives per-index signing keys from a mnemonic along the standard
// ethereum path m/44'/60'/0'/0/index.
type Signer struct {
	master *hdkeychain.ExtendedKey
}

func NewSigner(mnemonic string) (*Signer, error) {
	if mnemonic == "" {
		return nil, errors.New("signer mnemonic is empty")
	}

	seed := bip39.NewSeed(mnemonic, "")
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive master key")
	}

	return &Signer{master: master}, nil
}

// DeriveKey returns the private key for a signing index.
func (s *Signer) DeriveKey(index uint32) (*ecdsa.PrivateKey, error) {
	path := []uint32{
		hdkeychain.HardenedKeyStart + 44,
		hdkeychain.HardenedKeyStart + 60,
		hdkeychain.HardenedKeyStart + 0,
		0,
		index,
	}

	key := s.master
	var err error
	for _, step := range path {
		key, err = key.Derive(step)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive key at step %d", step)
		}
	}

	privKey, err := key.ECPrivKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract private key")
	}

	return privKey.ToECDSA(), nil
}

// DeriveAddress returns the hex address for a signing index.
func (s *Signer) DeriveAddress(index uint32) (string, error) {
	key, err := s.DeriveKey(index)
	if err != nil {
		return "", err
	}

	return crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}
