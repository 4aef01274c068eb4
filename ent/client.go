// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/SimpnicServerTeam/scs-mfa-server/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/SimpnicServerTeam/scs-mfa-server/ent/mfadevice"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// MFADevice is the client for interacting with the MFADevice builders.
	MFADevice *MFADeviceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.MFADevice = NewMFADeviceClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:       ctx,
		config:    cfg,
		MFADevice: NewMFADeviceClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:       ctx,
		config:    cfg,
		MFADevice: NewMFADeviceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		MFADevice.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.MFADevice.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.MFADevice.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *MFADeviceMutation:
		return c.MFADevice.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// MFADeviceClient is a client for the MFADevice schema.
type MFADeviceClient struct {
	config
}

// NewMFADeviceClient returns a client for the MFADevice from the given config.
func NewMFADeviceClient(c config) *MFADeviceClient {
	return &MFADeviceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mfadevice.Hooks(f(g(h())))`.
func (c *MFADeviceClient) Use(hooks ...Hook) {
	c.hooks.MFADevice = append(c.hooks.MFADevice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mfadevice.Intercept(f(g(h())))`.
func (c *MFADeviceClient) Intercept(interceptors ...Interceptor) {
	c.inters.MFADevice = append(c.inters.MFADevice, interceptors...)
}

// Create returns a builder for creating a MFADevice entity.
func (c *MFADeviceClient) Create() *MFADeviceCreate {
	mutation := newMFADeviceMutation(c.config, OpCreate)
	return &MFADeviceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MFADevice entities.
func (c *MFADeviceClient) CreateBulk(builders ...*MFADeviceCreate) *MFADeviceCreateBulk {
	return &MFADeviceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MFADeviceClient) MapCreateBulk(slice any, setFunc func(*MFADeviceCreate, int)) *MFADeviceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MFADeviceCreateBulk{err: fmt.Errorf("calling to MFADeviceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MFADeviceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MFADeviceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MFADevice.
func (c *MFADeviceClient) Update() *MFADeviceUpdate {
	mutation := newMFADeviceMutation(c.config, OpUpdate)
	return &MFADeviceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MFADeviceClient) UpdateOne(md *MFADevice) *MFADeviceUpdateOne {
	mutation := newMFADeviceMutation(c.config, OpUpdateOne, withMFADevice(md))
	return &MFADeviceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MFADeviceClient) UpdateOneID(id string) *MFADeviceUpdateOne {
	mutation := newMFADeviceMutation(c.config, OpUpdateOne, withMFADeviceID(id))
	return &MFADeviceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MFADevice.
func (c *MFADeviceClient) Delete() *MFADeviceDelete {
	mutation := newMFADeviceMutation(c.config, OpDelete)
	return &MFADeviceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MFADeviceClient) DeleteOne(md *MFADevice) *MFADeviceDeleteOne {
	return c.DeleteOneID(md.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MFADeviceClient) DeleteOneID(id string) *MFADeviceDeleteOne {
	builder := c.Delete().Where(mfadevice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MFADeviceDeleteOne{builder}
}

// Query returns a query builder for MFADevice.
func (c *MFADeviceClient) Query() *MFADeviceQuery {
	return &MFADeviceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMFADevice},
		inters: c.Interceptors(),
	}
}

// Get returns a MFADevice entity by its id.
func (c *MFADeviceClient) Get(ctx context.Context, id string) (*MFADevice, error) {
	return c.Query().Where(mfadevice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MFADeviceClient) GetX(ctx context.Context, id string) *MFADevice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MFADeviceClient) Hooks() []Hook {
	return c.hooks.MFADevice
}

// Interceptors returns the client interceptors.
func (c *MFADeviceClient) Interceptors() []Interceptor {
	return c.inters.MFADevice
}

func (c *MFADeviceClient) mutate(ctx context.Context, m *MFADeviceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MFADeviceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MFADeviceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MFADeviceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MFADeviceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MFADevice mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		MFADevice []ent.Hook
	}
	inters struct {
		MFADevice []ent.Interceptor
	}
)
