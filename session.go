package jpake

import (
	"golang.org/x/crypto/sha3"

	"github.com/jpake-go/jpake/internal/curve"
	"github.com/jpake-go/jpake/internal/schnorr"
)

// State is a stage in a Session's lifecycle. Each public Session operation
// is legal from exactly one source State; any other call fails with an
// InvalidState Error and leaves the Session unchanged.
type State int

const (
	// StateInitial is a freshly created Session's state.
	StateInitial State = iota
	// StateRound1Done follows a successful Round1 call.
	StateRound1Done
	// StateRound2Done follows a successful Round2 call.
	StateRound2Done
	// StateRound2Received follows a successful SetRound2FromPeer call.
	StateRound2Received
	// StateKeyDerived follows a successful DeriveSharedKey call. It is
	// terminal: no further operation on the same Session can succeed.
	StateKeyDerived
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "INITIAL"
	case StateRound1Done:
		return "ROUND1_DONE"
	case StateRound2Done:
		return "ROUND2_DONE"
	case StateRound2Received:
		return "ROUND2_RECEIVED"
	case StateKeyDerived:
		return "KEY_DERIVED"
	default:
		return "UNKNOWN"
	}
}

// Session is one party's view of a two-round J-PAKE exchange. The local
// party is always modelled as Alice and the peer as Bob; a Session is
// exclusively owned by one logical actor and must not be used
// concurrently from multiple goroutines without external synchronisation.
//
// A Session holds no I/O handles; the caller is responsible for
// transporting Round1Result and Round2Result to and from the peer.
type Session struct {
	userID    string
	otherInfo []string
	state     State

	x1, x2, x2s *curve.Scalar

	g1, g2 curve.Point
	g3, g4 curve.Point

	b curve.Point

	peerZKPx2s schnorr.Proof
	peerUserID string
}

// NewSession creates a Session bound to userID, with an optional ordered
// list of context strings that will be bound into every proof this party
// emits. It fails with InvalidArgument if userID is empty or if userID
// exceeds 255 UTF-8 bytes (the challenge hash's length-prefix limit).
func NewSession(userID string, otherInfo ...string) (*Session, error) {
	if userID == "" {
		return nil, newErr(InvalidArgument, "missing userId")
	}

	if len(userID) > 255 {
		return nil, newErr(InvalidArgument, "userId exceeds 255 bytes")
	}

	return &Session{
		userID:    userID,
		otherInfo: otherInfo,
		state:     StateInitial,
	}, nil
}

// UserID returns the Session's own identity.
func (s *Session) UserID() string {
	return s.userID
}

// State returns the Session's current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Round1Result is the first message of the two-round protocol: two
// ephemeral commitments and a proof of knowledge of the discrete log
// behind each.
type Round1Result struct {
	G1, G2       [PointSize]byte
	ZKPx1, ZKPx2 schnorr.Proof
}

// Round2Result is the second message of the two-round protocol: the
// mixed-generator commitment A and a proof of knowledge of the scalar
// behind it.
type Round2Result struct {
	A      [PointSize]byte
	ZKPx2s schnorr.Proof
}

// Round1 samples two fresh ephemeral scalars x1, x2, computes the
// commitments G1 = G*x1 and G2 = G*x2, and proves knowledge of both.
// It requires state INITIAL and leaves state ROUND1_DONE.
func (s *Session) Round1() (*Round1Result, error) {
	if s.state != StateInitial {
		return nil, newErr(InvalidState, "round1 requires state INITIAL")
	}

	x1, err := curve.RandomScalar()
	if err != nil {
		return nil, wrapErr(Internal, "round1: failed to draw x1", err)
	}

	x2, err := curve.RandomScalar()
	if err != nil {
		return nil, wrapErr(Internal, "round1: failed to draw x2", err)
	}

	g1 := curve.ScalarBaseMul(x1)
	g2 := curve.ScalarBaseMul(x2)

	zkpX1, err := schnorr.Prove(s.userID, x1, g1, curve.G(), s.otherInfo)
	if err != nil {
		return nil, err
	}

	zkpX2, err := schnorr.Prove(s.userID, x2, g2, curve.G(), s.otherInfo)
	if err != nil {
		return nil, err
	}

	s.x1, s.x2 = x1, x2
	s.g1, s.g2 = g1, g2
	s.state = StateRound1Done

	return &Round1Result{
		G1:    g1.Compressed(),
		G2:    g2.Compressed(),
		ZKPx1: zkpX1,
		ZKPx2: zkpX2,
	}, nil
}

// Round2 consumes the peer's round 1 message and the shared password
// scalar s, verifies the peer's proofs of knowledge of x3 and x4 (using
// the peer's own naming: G3 = peerR1.G1, G4 = peerR1.G2), computes the
// mixed generator G1+G3+G4 and the commitment A = (G1+G3+G4)*(x2*s), and
// proves knowledge of x2*s with respect to that generator.
//
// It requires state ROUND1_DONE and leaves state ROUND2_DONE.
func (s *Session) Round2(peerR1 *Round1Result, sBytes []byte, peerUserID string) (*Round2Result, error) {
	if s.state != StateRound1Done {
		return nil, newErr(InvalidState, "round2 requires state ROUND1_DONE")
	}

	if peerR1 == nil || len(sBytes) == 0 || peerUserID == "" {
		return nil, newErr(InvalidArgument, "missing required arguments for round 2")
	}

	g3, err := curve.DecodePoint(peerR1.G1[:])
	if err != nil {
		return nil, newErr(InvalidArgument, "invalid points received: G1 or G2 is not a valid point")
	}

	g4, err := curve.DecodePoint(peerR1.G2[:])
	if err != nil {
		return nil, newErr(InvalidArgument, "invalid points received: G1 or G2 is not a valid point")
	}

	sScalar := curve.ScalarFromBytes(sBytes)
	if curve.ScalarIsZero(sScalar) {
		return nil, newErr(InvalidArgument, "invalid s: s MUST not be equal to 0 mod n")
	}

	if peerUserID == s.userID {
		return nil, newErr(VerificationError, "proof verification failed, userIds are equal")
	}

	// RFC 8236 requires verifying both of the peer's round 1 proofs; both
	// are checked here even though the ZKPx2 check has no further effect
	// on this round's arithmetic, only on round 2's acceptance of the
	// peer's identity claim.
	okX1, err := schnorr.Verify(peerUserID, g3, peerR1.ZKPx1, curve.G(), s.otherInfo)
	if err != nil {
		return nil, err
	}

	okX2, err := schnorr.Verify(peerUserID, g4, peerR1.ZKPx2, curve.G(), s.otherInfo)
	if err != nil {
		return nil, err
	}

	if !okX1 || !okX2 {
		return nil, newErr(VerificationError, "zkp verification failed")
	}

	x2s := curve.ScalarMul(s.x2, sScalar)

	generator := s.g1.Add(g3).Add(g4)
	if generator.IsInfinity() {
		return nil, newErr(VerificationError, "invalid point: the new generator is the point at infinity")
	}

	a := generator.Mul(x2s)

	zkpX2s, err := schnorr.Prove(s.userID, x2s, a, generator, s.otherInfo)
	if err != nil {
		return nil, err
	}

	s.g3, s.g4 = g3, g4
	s.x2s = x2s
	s.peerUserID = peerUserID
	s.state = StateRound2Done

	return &Round2Result{A: a.Compressed(), ZKPx2s: zkpX2s}, nil
}

// SetRound2FromPeer stores the peer's round 2 message for use by
// DeriveSharedKey. It requires state ROUND2_DONE and leaves state
// ROUND2_RECEIVED.
func (s *Session) SetRound2FromPeer(peerR2 *Round2Result) error {
	if s.state != StateRound2Done {
		return newErr(InvalidState, "setRound2FromPeer requires state ROUND2_DONE")
	}

	if peerR2 == nil {
		return newErr(InvalidArgument, "missing required arguments for setRound2ResultFromPeer")
	}

	b, err := curve.DecodePoint(peerR2.A[:])
	if err != nil {
		return newErr(InvalidArgument, "invalid point received for B")
	}

	s.b = b
	s.peerZKPx2s = peerR2.ZKPx2s
	s.state = StateRound2Received

	return nil
}

// DeriveSharedKey verifies the peer's round 2 proof against the
// peer-perspective generator G1+G2+G3 (equal, by commutativity of point
// addition, to the RFC's G1+G3+G2 as computed from this party's own
// round 2), computes Ka = (B - G4*x2s)*x2, and returns SHA3-256(Ka).
//
// It requires state ROUND2_RECEIVED and leaves the terminal state
// KEY_DERIVED.
func (s *Session) DeriveSharedKey() ([ScalarSize]byte, error) {
	var zero [ScalarSize]byte

	if s.state != StateRound2Received {
		return zero, newErr(InvalidState, "deriveSharedKey requires state ROUND2_RECEIVED")
	}

	if s.x2 == nil || s.x2s == nil || s.peerUserID == "" {
		return zero, newErr(Internal, "missing required data for key derivation")
	}

	if s.b.IsInfinity() {
		return zero, newErr(VerificationError, "invalid point: B is the point at infinity")
	}

	peerGenerator := s.g1.Add(s.g3).Add(s.g2)

	ok, err := schnorr.Verify(s.peerUserID, s.b, s.peerZKPx2s, peerGenerator, s.otherInfo)
	if err != nil {
		return zero, err
	}

	if !ok {
		return zero, newErr(VerificationError, "zkp verification failed")
	}

	g4x2s := s.g4.Mul(s.x2s)
	ka := s.b.Add(g4x2s.Negate()).Mul(s.x2)

	kaBytes := ka.Compressed()
	key := sha3.Sum256(kaBytes[:])

	s.state = StateKeyDerived
	s.zeroSecrets()

	return key, nil
}

// zeroSecrets clears the scalars that, if leaked, would compromise this
// Session. It is called once a shared key has been derived and has no
// further use for them.
func (s *Session) zeroSecrets() {
	curve.ScalarZero(s.x1)
	curve.ScalarZero(s.x2)
	curve.ScalarZero(s.x2s)
}

// Destroy zeroes every secret scalar held by the Session. Callers should
// call Destroy when abandoning a Session before it reaches KEY_DERIVED
// (which zeroes them itself) or VerificationError/Internal failure.
func (s *Session) Destroy() {
	s.zeroSecrets()
}
