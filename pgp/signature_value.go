package pgp

// SignatureValue is the algorithm-specific part of a signature packet which
// follows the two-byte hash prefix. DSA, ECDSA and EdDSA all encode it as the
// pair of MPIs (r, s).
type SignatureValue interface {
	Encodable
	Algorithm() PublicKeyAlgorithm
	R() MPI
	S() MPI
}

// scalarPair is the shared encoding of a signature value.
type scalarPair struct {
	r, s MPI
}

func parseScalarPair(dec *Decoder) (scalarPair, error) {
	r, err := DecodeMPI(dec)
	if err != nil {
		return scalarPair{}, withField("r", err)
	}
	s, err := DecodeMPI(dec)
	if err != nil {
		return scalarPair{}, withField("s", err)
	}
	return scalarPair{r: r, s: s}, nil
}

func (p scalarPair) R() MPI { return p.r }
func (p scalarPair) S() MPI { return p.s }

func (p scalarPair) Size() int { return p.r.Size() + p.s.Size() }

func (p scalarPair) Encode(w Sink) error {
	if err := p.r.Encode(w); err != nil {
		return withField("r", err)
	}
	return withField("s", p.s.Encode(w))
}

// signPair signs digest through a SigningBridge on behalf of alg.
func signPair(alg PublicKeyAlgorithm, provider SigningProvider, key SecretKey, digest [DigestSize]byte) (scalarPair, error) {
	r, s, err := NewSigningBridge(provider, key).Sign(alg, digest[:])
	if err != nil {
		return scalarPair{}, err
	}
	return scalarPair{r: r, s: s}, nil
}

// DSASignatureValue holds the (r, s) values of a DSA signature.
type DSASignatureValue struct{ scalarPair }

// NewDSASignatureValue wraps known r and s values.
func NewDSASignatureValue(r, s MPI) *DSASignatureValue {
	return &DSASignatureValue{scalarPair{r: r, s: s}}
}

// ParseDSASignatureValue reads r, then s, from dec.
func ParseDSASignatureValue(dec *Decoder) (*DSASignatureValue, error) {
	pair, err := parseScalarPair(dec)
	if err != nil {
		return nil, withField("dsa", err)
	}
	return &DSASignatureValue{pair}, nil
}

// SignDSA signs digest with a DSA secret key.
func SignDSA(provider SigningProvider, key SecretKey, digest [DigestSize]byte) (*DSASignatureValue, error) {
	pair, err := signPair(PublicKeyAlgorithmDSA, provider, key, digest)
	if err != nil {
		return nil, err
	}
	return &DSASignatureValue{pair}, nil
}

func (v *DSASignatureValue) Algorithm() PublicKeyAlgorithm { return PublicKeyAlgorithmDSA }

// ECDSASignatureValue holds the (r, s) values of an ECDSA signature.
type ECDSASignatureValue struct{ scalarPair }

// NewECDSASignatureValue wraps known r and s values.
func NewECDSASignatureValue(r, s MPI) *ECDSASignatureValue {
	return &ECDSASignatureValue{scalarPair{r: r, s: s}}
}

// ParseECDSASignatureValue reads r, then s, from dec.
func ParseECDSASignatureValue(dec *Decoder) (*ECDSASignatureValue, error) {
	pair, err := parseScalarPair(dec)
	if err != nil {
		return nil, withField("ecdsa", err)
	}
	return &ECDSASignatureValue{pair}, nil
}

// SignECDSA signs digest with an ECDSA secret key.
func SignECDSA(provider SigningProvider, key SecretKey, digest [DigestSize]byte) (*ECDSASignatureValue, error) {
	pair, err := signPair(PublicKeyAlgorithmECDSA, provider, key, digest)
	if err != nil {
		return nil, err
	}
	return &ECDSASignatureValue{pair}, nil
}

func (v *ECDSASignatureValue) Algorithm() PublicKeyAlgorithm { return PublicKeyAlgorithmECDSA }

// EdDSASignatureValue holds the R and S halves of an EdDSA signature, each
// encoded as an MPI.
type EdDSASignatureValue struct{ scalarPair }

// NewEdDSASignatureValue wraps known R and S values.
func NewEdDSASignatureValue(r, s MPI) *EdDSASignatureValue {
	return &EdDSASignatureValue{scalarPair{r: r, s: s}}
}

// ParseEdDSASignatureValue reads R, then S, from dec.
func ParseEdDSASignatureValue(dec *Decoder) (*EdDSASignatureValue, error) {
	pair, err := parseScalarPair(dec)
	if err != nil {
		return nil, withField("eddsa", err)
	}
	return &EdDSASignatureValue{pair}, nil
}

// SignEdDSA signs digest with an EdDSA secret key.
func SignEdDSA(provider SigningProvider, key SecretKey, digest [DigestSize]byte) (*EdDSASignatureValue, error) {
	pair, err := signPair(PublicKeyAlgorithmEdDSA, provider, key, digest)
	if err != nil {
		return nil, err
	}
	return &EdDSASignatureValue{pair}, nil
}

func (v *EdDSASignatureValue) Algorithm() PublicKeyAlgorithm { return PublicKeyAlgorithmEdDSA }

// ParseSignatureValue reads the signature value for the given algorithm.
func ParseSignatureValue(alg PublicKeyAlgorithm, dec *Decoder) (SignatureValue, error) {
	var (
		value SignatureValue
		err   error
	)
	switch alg {
	case PublicKeyAlgorithmDSA:
		value, err = ParseDSASignatureValue(dec)
	case PublicKeyAlgorithmECDSA:
		value, err = ParseECDSASignatureValue(dec)
	case PublicKeyAlgorithmEdDSA:
		value, err = ParseEdDSASignatureValue(dec)
	default:
		return nil, fieldErrorf(alg.Field(), ErrFormat, "no signature value format for %s (%d)", alg, alg)
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// signDigest produces a signature value of the key's algorithm.
func signDigest(provider SigningProvider, key SecretKey, digest [DigestSize]byte) (SignatureValue, error) {
	if key == nil {
		return nil, newSigningError("no secret key given")
	}

	var (
		value SignatureValue
		err   error
	)
	switch key.Algorithm() {
	case PublicKeyAlgorithmDSA:
		value, err = SignDSA(provider, key, digest)
	case PublicKeyAlgorithmECDSA:
		value, err = SignECDSA(provider, key, digest)
	case PublicKeyAlgorithmEdDSA:
		value, err = SignEdDSA(provider, key, digest)
	default:
		return nil, newSigningError("cannot sign with %s keys", key.Algorithm())
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}
