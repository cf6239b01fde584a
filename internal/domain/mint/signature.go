package mint

// SignatureState is the observed settlement state of a payment signature.
type SignatureState string

const (
	// SignatureNotFound means the cluster has no record of the signature.
	// Recent submissions look like this until they land; the sweeper only
	// treats it as abandonment after the grace period.
	SignatureNotFound SignatureState = "not_found"
	SignaturePending  SignatureState = "pending"
	SignatureSettled  SignatureState = "settled"
	SignatureFailed   SignatureState = "failed"
)
