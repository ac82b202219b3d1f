package gateway

import "sync"

// Credentials holds the bearer token shared by the client and the session
type Credentials struct {
	mu    sync.RWMutex
	token string
}

func NewCredentials() *Credentials {
	return &Credentials{}
}

func (c *Credentials) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Credentials) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Credentials) Clear() {
	c.SetToken("")
}
