package common

// DateLayout is the fixed calendar-date format used on the wire,
// e.g. "Mon Jan 02 2006".
const DateLayout = "Mon Jan 02 2006"

// RequestIDHeaderName carries the per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"
