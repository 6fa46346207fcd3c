package cell

import "github.com/louisbranch/tracecell/internal/cell/history"

// Client threads one caller's token through its calls on a cell.
// A Client is not safe for concurrent use; give each goroutine its own.
type Client struct {
	cell     *Cell
	token    Token
	last     int
	observed bool
}

// NewClient returns a client starting from tok. The zero token starts a
// client that has witnessed nothing.
func NewClient(c *Cell, tok Token) *Client {
	return &Client{cell: c, token: tok}
}

// Token returns the latest token the client holds.
func (cl *Client) Token() Token {
	return cl.token
}

// Last returns the most recently observed value, if any.
func (cl *Client) Last() (int, bool) {
	return cl.last, cl.observed
}

// Increment appends Inc and returns the resulting value.
func (cl *Client) Increment() (int, error) {
	out, err := cl.apply(history.Inc())
	return out.Value, err
}

// Decrement appends Dec and returns the resulting value.
func (cl *Client) Decrement() (int, error) {
	out, err := cl.apply(history.Dec())
	return out.Value, err
}

// CompareAndSwap attempts Cas(old, new) and returns the prior value.
func (cl *Client) CompareAndSwap(old, new int) (int, error) {
	out, err := cl.apply(history.Cas(old, new))
	return out.Prior, err
}

func (cl *Client) apply(op history.Operation) (Outcome, error) {
	next, out, err := cl.cell.Apply(cl.token, op)
	if err != nil {
		return Outcome{}, err
	}
	cl.token = next
	cl.observe(out.Value)
	return out, nil
}

// Get reads the current value.
func (cl *Client) Get() (int, error) {
	next, value, err := cl.cell.Get(cl.token)
	if err != nil {
		return 0, err
	}
	cl.token = next
	cl.observe(value)
	return value, nil
}

func (cl *Client) observe(value int) {
	cl.last = value
	cl.observed = true
}

// CheckMonotonic performs two sequential reads and fails with
// ErrNonMonotonic if the second observed a smaller value.
func CheckMonotonic(cl *Client) error {
	return checkMonotonic(cl, nil)
}

func checkMonotonic(cl *Client, between func()) error {
	before, err := cl.Get()
	if err != nil {
		return err
	}
	if between != nil {
		between()
	}
	after, err := cl.Get()
	if err != nil {
		return err
	}
	if after < before {
		return nonMonotonicError(before, after)
	}
	return nil
}
