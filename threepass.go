package jpake

// ThreePass reshapes the symmetric two-round J-PAKE engine into a strict
// three-message schedule for transports that require a back-and-forth
// rather than two parallel rounds:
//
//	pass1 (initiator -> responder): initiator.Pass1()
//	pass2 (responder -> initiator): responder.Pass2(pass1, s, initiatorID)
//	pass3 (initiator -> responder): initiator.Pass3(pass2, s, responderID)
//	responder.ReceivePass3(pass3)
//	both: DeriveSharedKey()
//
// No cryptographic material is added or removed by this adapter; it is a
// pure scheduling wrapper around Session.
type ThreePass struct {
	session *Session
}

// NewThreePass creates a ThreePass session bound to userID, with the same
// semantics as NewSession.
func NewThreePass(userID string, otherInfo ...string) (*ThreePass, error) {
	session, err := NewSession(userID, otherInfo...)
	if err != nil {
		return nil, err
	}

	return &ThreePass{session: session}, nil
}

// UserID returns the ThreePass session's own identity.
func (t *ThreePass) UserID() string {
	return t.session.UserID()
}

// State returns the underlying Session's lifecycle state.
func (t *ThreePass) State() State {
	return t.session.State()
}

// Pass1 is the initiator's first message.
func (t *ThreePass) Pass1() (*Round1Result, error) {
	return t.session.Round1()
}

// ResponderPass2 bundles the responder's own round 1 message with their
// round 2 response to the initiator's pass 1, the two halves of pass 2.
type ResponderPass2 struct {
	Round1 *Round1Result
	Round2 *Round2Result
}

// Pass2 is the responder's reply to the initiator's pass 1: the
// responder's own round 1 message, plus their round 2 response computed
// against the initiator's round 1 message and the shared password scalar.
func (t *ThreePass) Pass2(initiatorPass1 *Round1Result, s []byte, initiatorUserID string) (*ResponderPass2, error) {
	r1, err := t.session.Round1()
	if err != nil {
		return nil, err
	}

	r2, err := t.session.Round2(initiatorPass1, s, initiatorUserID)
	if err != nil {
		return nil, err
	}

	return &ResponderPass2{Round1: r1, Round2: r2}, nil
}

// Pass3 is the initiator's reply to the responder's pass 2: the
// initiator's round 2 response to the responder's round 1 message, having
// also consumed the responder's round 2 message.
func (t *ThreePass) Pass3(responderPass2 *ResponderPass2, s []byte, responderUserID string) (*Round2Result, error) {
	if responderPass2 == nil {
		return nil, newErr(InvalidArgument, "missing responder pass 2 message")
	}

	r2, err := t.session.Round2(responderPass2.Round1, s, responderUserID)
	if err != nil {
		return nil, err
	}

	if err := t.session.SetRound2FromPeer(responderPass2.Round2); err != nil {
		return nil, err
	}

	return r2, nil
}

// ReceivePass3 is the responder's consumption of the initiator's pass 3
// message.
func (t *ThreePass) ReceivePass3(initiatorPass3 *Round2Result) error {
	return t.session.SetRound2FromPeer(initiatorPass3)
}

// DeriveSharedKey derives the shared key, the same as Session.DeriveSharedKey.
func (t *ThreePass) DeriveSharedKey() ([ScalarSize]byte, error) {
	return t.session.DeriveSharedKey()
}

// Destroy zeroes the underlying Session's secrets.
func (t *ThreePass) Destroy() {
	t.session.Destroy()
}
