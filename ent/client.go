// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/teambuh/slamon/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/chatinvitation"
	"github.com/teambuh/slamon/ent/chatmessage"
	"github.com/teambuh/slamon/ent/classificationcache"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/faqitem"
	"github.com/teambuh/slamon/ent/feedbackresponse"
	"github.com/teambuh/slamon/ent/globalsettings"
	"github.com/teambuh/slamon/ent/lease"
	"github.com/teambuh/slamon/ent/slaalert"
	"github.com/teambuh/slamon/ent/timerjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Chat is the client for interacting with the Chat builders.
	Chat *ChatClient
	// ChatInvitation is the client for interacting with the ChatInvitation builders.
	ChatInvitation *ChatInvitationClient
	// ChatMessage is the client for interacting with the ChatMessage builders.
	ChatMessage *ChatMessageClient
	// ClassificationCache is the client for interacting with the ClassificationCache builders.
	ClassificationCache *ClassificationCacheClient
	// ClientRequest is the client for interacting with the ClientRequest builders.
	ClientRequest *ClientRequestClient
	// FAQItem is the client for interacting with the FAQItem builders.
	FAQItem *FAQItemClient
	// FeedbackResponse is the client for interacting with the FeedbackResponse builders.
	FeedbackResponse *FeedbackResponseClient
	// GlobalSettings is the client for interacting with the GlobalSettings builders.
	GlobalSettings *GlobalSettingsClient
	// Lease is the client for interacting with the Lease builders.
	Lease *LeaseClient
	// SLAAlert is the client for interacting with the SLAAlert builders.
	SLAAlert *SLAAlertClient
	// TimerJob is the client for interacting with the TimerJob builders.
	TimerJob *TimerJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Chat = NewChatClient(c.config)
	c.ChatInvitation = NewChatInvitationClient(c.config)
	c.ChatMessage = NewChatMessageClient(c.config)
	c.ClassificationCache = NewClassificationCacheClient(c.config)
	c.ClientRequest = NewClientRequestClient(c.config)
	c.FAQItem = NewFAQItemClient(c.config)
	c.FeedbackResponse = NewFeedbackResponseClient(c.config)
	c.GlobalSettings = NewGlobalSettingsClient(c.config)
	c.Lease = NewLeaseClient(c.config)
	c.SLAAlert = NewSLAAlertClient(c.config)
	c.TimerJob = NewTimerJobClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		Chat:                NewChatClient(cfg),
		ChatInvitation:      NewChatInvitationClient(cfg),
		ChatMessage:         NewChatMessageClient(cfg),
		ClassificationCache: NewClassificationCacheClient(cfg),
		ClientRequest:       NewClientRequestClient(cfg),
		FAQItem:             NewFAQItemClient(cfg),
		FeedbackResponse:    NewFeedbackResponseClient(cfg),
		GlobalSettings:      NewGlobalSettingsClient(cfg),
		Lease:               NewLeaseClient(cfg),
		SLAAlert:            NewSLAAlertClient(cfg),
		TimerJob:            NewTimerJobClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		Chat:                NewChatClient(cfg),
		ChatInvitation:      NewChatInvitationClient(cfg),
		ChatMessage:         NewChatMessageClient(cfg),
		ClassificationCache: NewClassificationCacheClient(cfg),
		ClientRequest:       NewClientRequestClient(cfg),
		FAQItem:             NewFAQItemClient(cfg),
		FeedbackResponse:    NewFeedbackResponseClient(cfg),
		GlobalSettings:      NewGlobalSettingsClient(cfg),
		Lease:               NewLeaseClient(cfg),
		SLAAlert:            NewSLAAlertClient(cfg),
		TimerJob:            NewTimerJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Chat.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Chat, c.ChatInvitation, c.ChatMessage, c.ClassificationCache, c.ClientRequest,
		c.FAQItem, c.FeedbackResponse, c.GlobalSettings, c.Lease, c.SLAAlert,
		c.TimerJob,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Chat, c.ChatInvitation, c.ChatMessage, c.ClassificationCache, c.ClientRequest,
		c.FAQItem, c.FeedbackResponse, c.GlobalSettings, c.Lease, c.SLAAlert,
		c.TimerJob,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChatMutation:
		return c.Chat.mutate(ctx, m)
	case *ChatInvitationMutation:
		return c.ChatInvitation.mutate(ctx, m)
	case *ChatMessageMutation:
		return c.ChatMessage.mutate(ctx, m)
	case *ClassificationCacheMutation:
		return c.ClassificationCache.mutate(ctx, m)
	case *ClientRequestMutation:
		return c.ClientRequest.mutate(ctx, m)
	case *FAQItemMutation:
		return c.FAQItem.mutate(ctx, m)
	case *FeedbackResponseMutation:
		return c.FeedbackResponse.mutate(ctx, m)
	case *GlobalSettingsMutation:
		return c.GlobalSettings.mutate(ctx, m)
	case *LeaseMutation:
		return c.Lease.mutate(ctx, m)
	case *SLAAlertMutation:
		return c.SLAAlert.mutate(ctx, m)
	case *TimerJobMutation:
		return c.TimerJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChatClient is a client for the Chat schema.
type ChatClient struct {
	config
}

// NewChatClient returns a client for the Chat from the given config.
func NewChatClient(c config) *ChatClient {
	return &ChatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chat.Hooks(f(g(h())))`.
func (c *ChatClient) Use(hooks ...Hook) {
	c.hooks.Chat = append(c.hooks.Chat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chat.Intercept(f(g(h())))`.
func (c *ChatClient) Intercept(interceptors ...Interceptor) {
	c.inters.Chat = append(c.inters.Chat, interceptors...)
}

// Create returns a builder for creating a Chat entity.
func (c *ChatClient) Create() *ChatCreate {
	mutation := newChatMutation(c.config, OpCreate)
	return &ChatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Chat entities.
func (c *ChatClient) CreateBulk(builders ...*ChatCreate) *ChatCreateBulk {
	return &ChatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatClient) MapCreateBulk(slice any, setFunc func(*ChatCreate, int)) *ChatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatCreateBulk{err: fmt.Errorf("calling to ChatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Chat.
func (c *ChatClient) Update() *ChatUpdate {
	mutation := newChatMutation(c.config, OpUpdate)
	return &ChatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatClient) UpdateOne(_m *Chat) *ChatUpdateOne {
	mutation := newChatMutation(c.config, OpUpdateOne, withChat(_m))
	return &ChatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatClient) UpdateOneID(id int64) *ChatUpdateOne {
	mutation := newChatMutation(c.config, OpUpdateOne, withChatID(id))
	return &ChatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Chat.
func (c *ChatClient) Delete() *ChatDelete {
	mutation := newChatMutation(c.config, OpDelete)
	return &ChatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatClient) DeleteOne(_m *Chat) *ChatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatClient) DeleteOneID(id int64) *ChatDeleteOne {
	builder := c.Delete().Where(chat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatDeleteOne{builder}
}

// Query returns a query builder for Chat.
func (c *ChatClient) Query() *ChatQuery {
	return &ChatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChat},
		inters: c.Interceptors(),
	}
}

// Get returns a Chat entity by its id.
func (c *ChatClient) Get(ctx context.Context, id int64) (*Chat, error) {
	return c.Query().Where(chat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatClient) GetX(ctx context.Context, id int64) *Chat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequests queries the requests edge of a Chat.
func (c *ChatClient) QueryRequests(_m *Chat) *ClientRequestQuery {
	query := (&ClientRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chat.Table, chat.FieldID, id),
			sqlgraph.To(clientrequest.Table, clientrequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chat.RequestsTable, chat.RequestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Chat.
func (c *ChatClient) QueryMessages(_m *Chat) *ChatMessageQuery {
	query := (&ChatMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chat.Table, chat.FieldID, id),
			sqlgraph.To(chatmessage.Table, chatmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chat.MessagesTable, chat.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFeedback queries the feedback edge of a Chat.
func (c *ChatClient) QueryFeedback(_m *Chat) *FeedbackResponseQuery {
	query := (&FeedbackResponseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chat.Table, chat.FieldID, id),
			sqlgraph.To(feedbackresponse.Table, feedbackresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chat.FeedbackTable, chat.FeedbackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInvitations queries the invitations edge of a Chat.
func (c *ChatClient) QueryInvitations(_m *Chat) *ChatInvitationQuery {
	query := (&ChatInvitationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chat.Table, chat.FieldID, id),
			sqlgraph.To(chatinvitation.Table, chatinvitation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chat.InvitationsTable, chat.InvitationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatClient) Hooks() []Hook {
	return c.hooks.Chat
}

// Interceptors returns the client interceptors.
func (c *ChatClient) Interceptors() []Interceptor {
	return c.inters.Chat
}

func (c *ChatClient) mutate(ctx context.Context, m *ChatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Chat mutation op: %q", m.Op())
	}
}

// ChatInvitationClient is a client for the ChatInvitation schema.
type ChatInvitationClient struct {
	config
}

// NewChatInvitationClient returns a client for the ChatInvitation from the given config.
func NewChatInvitationClient(c config) *ChatInvitationClient {
	return &ChatInvitationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatinvitation.Hooks(f(g(h())))`.
func (c *ChatInvitationClient) Use(hooks ...Hook) {
	c.hooks.ChatInvitation = append(c.hooks.ChatInvitation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatinvitation.Intercept(f(g(h())))`.
func (c *ChatInvitationClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatInvitation = append(c.inters.ChatInvitation, interceptors...)
}

// Create returns a builder for creating a ChatInvitation entity.
func (c *ChatInvitationClient) Create() *ChatInvitationCreate {
	mutation := newChatInvitationMutation(c.config, OpCreate)
	return &ChatInvitationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatInvitation entities.
func (c *ChatInvitationClient) CreateBulk(builders ...*ChatInvitationCreate) *ChatInvitationCreateBulk {
	return &ChatInvitationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatInvitationClient) MapCreateBulk(slice any, setFunc func(*ChatInvitationCreate, int)) *ChatInvitationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatInvitationCreateBulk{err: fmt.Errorf("calling to ChatInvitationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatInvitationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatInvitationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatInvitation.
func (c *ChatInvitationClient) Update() *ChatInvitationUpdate {
	mutation := newChatInvitationMutation(c.config, OpUpdate)
	return &ChatInvitationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatInvitationClient) UpdateOne(_m *ChatInvitation) *ChatInvitationUpdateOne {
	mutation := newChatInvitationMutation(c.config, OpUpdateOne, withChatInvitation(_m))
	return &ChatInvitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatInvitationClient) UpdateOneID(id string) *ChatInvitationUpdateOne {
	mutation := newChatInvitationMutation(c.config, OpUpdateOne, withChatInvitationID(id))
	return &ChatInvitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatInvitation.
func (c *ChatInvitationClient) Delete() *ChatInvitationDelete {
	mutation := newChatInvitationMutation(c.config, OpDelete)
	return &ChatInvitationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatInvitationClient) DeleteOne(_m *ChatInvitation) *ChatInvitationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatInvitationClient) DeleteOneID(id string) *ChatInvitationDeleteOne {
	builder := c.Delete().Where(chatinvitation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatInvitationDeleteOne{builder}
}

// Query returns a query builder for ChatInvitation.
func (c *ChatInvitationClient) Query() *ChatInvitationQuery {
	return &ChatInvitationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatInvitation},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatInvitation entity by its id.
func (c *ChatInvitationClient) Get(ctx context.Context, id string) (*ChatInvitation, error) {
	return c.Query().Where(chatinvitation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatInvitationClient) GetX(ctx context.Context, id string) *ChatInvitation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChat queries the chat edge of a ChatInvitation.
func (c *ChatInvitationClient) QueryChat(_m *ChatInvitation) *ChatQuery {
	query := (&ChatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatinvitation.Table, chatinvitation.FieldID, id),
			sqlgraph.To(chat.Table, chat.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chatinvitation.ChatTable, chatinvitation.ChatColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatInvitationClient) Hooks() []Hook {
	return c.hooks.ChatInvitation
}

// Interceptors returns the client interceptors.
func (c *ChatInvitationClient) Interceptors() []Interceptor {
	return c.inters.ChatInvitation
}

func (c *ChatInvitationClient) mutate(ctx context.Context, m *ChatInvitationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatInvitationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatInvitationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatInvitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatInvitationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatInvitation mutation op: %q", m.Op())
	}
}

// ChatMessageClient is a client for the ChatMessage schema.
type ChatMessageClient struct {
	config
}

// NewChatMessageClient returns a client for the ChatMessage from the given config.
func NewChatMessageClient(c config) *ChatMessageClient {
	return &ChatMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatmessage.Hooks(f(g(h())))`.
func (c *ChatMessageClient) Use(hooks ...Hook) {
	c.hooks.ChatMessage = append(c.hooks.ChatMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatmessage.Intercept(f(g(h())))`.
func (c *ChatMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatMessage = append(c.inters.ChatMessage, interceptors...)
}

// Create returns a builder for creating a ChatMessage entity.
func (c *ChatMessageClient) Create() *ChatMessageCreate {
	mutation := newChatMessageMutation(c.config, OpCreate)
	return &ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatMessage entities.
func (c *ChatMessageClient) CreateBulk(builders ...*ChatMessageCreate) *ChatMessageCreateBulk {
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatMessageClient) MapCreateBulk(slice any, setFunc func(*ChatMessageCreate, int)) *ChatMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatMessageCreateBulk{err: fmt.Errorf("calling to ChatMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatMessage.
func (c *ChatMessageClient) Update() *ChatMessageUpdate {
	mutation := newChatMessageMutation(c.config, OpUpdate)
	return &ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatMessageClient) UpdateOne(_m *ChatMessage) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessage(_m))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatMessageClient) UpdateOneID(id string) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessageID(id))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatMessage.
func (c *ChatMessageClient) Delete() *ChatMessageDelete {
	mutation := newChatMessageMutation(c.config, OpDelete)
	return &ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatMessageClient) DeleteOne(_m *ChatMessage) *ChatMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatMessageClient) DeleteOneID(id string) *ChatMessageDeleteOne {
	builder := c.Delete().Where(chatmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatMessageDeleteOne{builder}
}

// Query returns a query builder for ChatMessage.
func (c *ChatMessageClient) Query() *ChatMessageQuery {
	return &ChatMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatMessage entity by its id.
func (c *ChatMessageClient) Get(ctx context.Context, id string) (*ChatMessage, error) {
	return c.Query().Where(chatmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatMessageClient) GetX(ctx context.Context, id string) *ChatMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChat queries the chat edge of a ChatMessage.
func (c *ChatMessageClient) QueryChat(_m *ChatMessage) *ChatQuery {
	query := (&ChatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatmessage.Table, chatmessage.FieldID, id),
			sqlgraph.To(chat.Table, chat.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chatmessage.ChatTable, chatmessage.ChatColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatMessageClient) Hooks() []Hook {
	return c.hooks.ChatMessage
}

// Interceptors returns the client interceptors.
func (c *ChatMessageClient) Interceptors() []Interceptor {
	return c.inters.ChatMessage
}

func (c *ChatMessageClient) mutate(ctx context.Context, m *ChatMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatMessage mutation op: %q", m.Op())
	}
}

// ClassificationCacheClient is a client for the ClassificationCache schema.
type ClassificationCacheClient struct {
	config
}

// NewClassificationCacheClient returns a client for the ClassificationCache from the given config.
func NewClassificationCacheClient(c config) *ClassificationCacheClient {
	return &ClassificationCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `classificationcache.Hooks(f(g(h())))`.
func (c *ClassificationCacheClient) Use(hooks ...Hook) {
	c.hooks.ClassificationCache = append(c.hooks.ClassificationCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `classificationcache.Intercept(f(g(h())))`.
func (c *ClassificationCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClassificationCache = append(c.inters.ClassificationCache, interceptors...)
}

// Create returns a builder for creating a ClassificationCache entity.
func (c *ClassificationCacheClient) Create() *ClassificationCacheCreate {
	mutation := newClassificationCacheMutation(c.config, OpCreate)
	return &ClassificationCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClassificationCache entities.
func (c *ClassificationCacheClient) CreateBulk(builders ...*ClassificationCacheCreate) *ClassificationCacheCreateBulk {
	return &ClassificationCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClassificationCacheClient) MapCreateBulk(slice any, setFunc func(*ClassificationCacheCreate, int)) *ClassificationCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClassificationCacheCreateBulk{err: fmt.Errorf("calling to ClassificationCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClassificationCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClassificationCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClassificationCache.
func (c *ClassificationCacheClient) Update() *ClassificationCacheUpdate {
	mutation := newClassificationCacheMutation(c.config, OpUpdate)
	return &ClassificationCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClassificationCacheClient) UpdateOne(_m *ClassificationCache) *ClassificationCacheUpdateOne {
	mutation := newClassificationCacheMutation(c.config, OpUpdateOne, withClassificationCache(_m))
	return &ClassificationCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClassificationCacheClient) UpdateOneID(id string) *ClassificationCacheUpdateOne {
	mutation := newClassificationCacheMutation(c.config, OpUpdateOne, withClassificationCacheID(id))
	return &ClassificationCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClassificationCache.
func (c *ClassificationCacheClient) Delete() *ClassificationCacheDelete {
	mutation := newClassificationCacheMutation(c.config, OpDelete)
	return &ClassificationCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClassificationCacheClient) DeleteOne(_m *ClassificationCache) *ClassificationCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClassificationCacheClient) DeleteOneID(id string) *ClassificationCacheDeleteOne {
	builder := c.Delete().Where(classificationcache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClassificationCacheDeleteOne{builder}
}

// Query returns a query builder for ClassificationCache.
func (c *ClassificationCacheClient) Query() *ClassificationCacheQuery {
	return &ClassificationCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClassificationCache},
		inters: c.Interceptors(),
	}
}

// Get returns a ClassificationCache entity by its id.
func (c *ClassificationCacheClient) Get(ctx context.Context, id string) (*ClassificationCache, error) {
	return c.Query().Where(classificationcache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClassificationCacheClient) GetX(ctx context.Context, id string) *ClassificationCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClassificationCacheClient) Hooks() []Hook {
	return c.hooks.ClassificationCache
}

// Interceptors returns the client interceptors.
func (c *ClassificationCacheClient) Interceptors() []Interceptor {
	return c.inters.ClassificationCache
}

func (c *ClassificationCacheClient) mutate(ctx context.Context, m *ClassificationCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClassificationCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClassificationCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClassificationCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClassificationCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClassificationCache mutation op: %q", m.Op())
	}
}

// ClientRequestClient is a client for the ClientRequest schema.
type ClientRequestClient struct {
	config
}

// NewClientRequestClient returns a client for the ClientRequest from the given config.
func NewClientRequestClient(c config) *ClientRequestClient {
	return &ClientRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clientrequest.Hooks(f(g(h())))`.
func (c *ClientRequestClient) Use(hooks ...Hook) {
	c.hooks.ClientRequest = append(c.hooks.ClientRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clientrequest.Intercept(f(g(h())))`.
func (c *ClientRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClientRequest = append(c.inters.ClientRequest, interceptors...)
}

// Create returns a builder for creating a ClientRequest entity.
func (c *ClientRequestClient) Create() *ClientRequestCreate {
	mutation := newClientRequestMutation(c.config, OpCreate)
	return &ClientRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClientRequest entities.
func (c *ClientRequestClient) CreateBulk(builders ...*ClientRequestCreate) *ClientRequestCreateBulk {
	return &ClientRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClientRequestClient) MapCreateBulk(slice any, setFunc func(*ClientRequestCreate, int)) *ClientRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClientRequestCreateBulk{err: fmt.Errorf("calling to ClientRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClientRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClientRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClientRequest.
func (c *ClientRequestClient) Update() *ClientRequestUpdate {
	mutation := newClientRequestMutation(c.config, OpUpdate)
	return &ClientRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClientRequestClient) UpdateOne(_m *ClientRequest) *ClientRequestUpdateOne {
	mutation := newClientRequestMutation(c.config, OpUpdateOne, withClientRequest(_m))
	return &ClientRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClientRequestClient) UpdateOneID(id string) *ClientRequestUpdateOne {
	mutation := newClientRequestMutation(c.config, OpUpdateOne, withClientRequestID(id))
	return &ClientRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClientRequest.
func (c *ClientRequestClient) Delete() *ClientRequestDelete {
	mutation := newClientRequestMutation(c.config, OpDelete)
	return &ClientRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClientRequestClient) DeleteOne(_m *ClientRequest) *ClientRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClientRequestClient) DeleteOneID(id string) *ClientRequestDeleteOne {
	builder := c.Delete().Where(clientrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClientRequestDeleteOne{builder}
}

// Query returns a query builder for ClientRequest.
func (c *ClientRequestClient) Query() *ClientRequestQuery {
	return &ClientRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClientRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a ClientRequest entity by its id.
func (c *ClientRequestClient) Get(ctx context.Context, id string) (*ClientRequest, error) {
	return c.Query().Where(clientrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClientRequestClient) GetX(ctx context.Context, id string) *ClientRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChat queries the chat edge of a ClientRequest.
func (c *ClientRequestClient) QueryChat(_m *ClientRequest) *ChatQuery {
	query := (&ChatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clientrequest.Table, clientrequest.FieldID, id),
			sqlgraph.To(chat.Table, chat.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clientrequest.ChatTable, clientrequest.ChatColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlerts queries the alerts edge of a ClientRequest.
func (c *ClientRequestClient) QueryAlerts(_m *ClientRequest) *SLAAlertQuery {
	query := (&SLAAlertClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clientrequest.Table, clientrequest.FieldID, id),
			sqlgraph.To(slaalert.Table, slaalert.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clientrequest.AlertsTable, clientrequest.AlertsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClientRequestClient) Hooks() []Hook {
	return c.hooks.ClientRequest
}

// Interceptors returns the client interceptors.
func (c *ClientRequestClient) Interceptors() []Interceptor {
	return c.inters.ClientRequest
}

func (c *ClientRequestClient) mutate(ctx context.Context, m *ClientRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClientRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClientRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClientRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClientRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClientRequest mutation op: %q", m.Op())
	}
}

// FAQItemClient is a client for the FAQItem schema.
type FAQItemClient struct {
	config
}

// NewFAQItemClient returns a client for the FAQItem from the given config.
func NewFAQItemClient(c config) *FAQItemClient {
	return &FAQItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `faqitem.Hooks(f(g(h())))`.
func (c *FAQItemClient) Use(hooks ...Hook) {
	c.hooks.FAQItem = append(c.hooks.FAQItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `faqitem.Intercept(f(g(h())))`.
func (c *FAQItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.FAQItem = append(c.inters.FAQItem, interceptors...)
}

// Create returns a builder for creating a FAQItem entity.
func (c *FAQItemClient) Create() *FAQItemCreate {
	mutation := newFAQItemMutation(c.config, OpCreate)
	return &FAQItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FAQItem entities.
func (c *FAQItemClient) CreateBulk(builders ...*FAQItemCreate) *FAQItemCreateBulk {
	return &FAQItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FAQItemClient) MapCreateBulk(slice any, setFunc func(*FAQItemCreate, int)) *FAQItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FAQItemCreateBulk{err: fmt.Errorf("calling to FAQItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FAQItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FAQItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FAQItem.
func (c *FAQItemClient) Update() *FAQItemUpdate {
	mutation := newFAQItemMutation(c.config, OpUpdate)
	return &FAQItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FAQItemClient) UpdateOne(_m *FAQItem) *FAQItemUpdateOne {
	mutation := newFAQItemMutation(c.config, OpUpdateOne, withFAQItem(_m))
	return &FAQItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FAQItemClient) UpdateOneID(id string) *FAQItemUpdateOne {
	mutation := newFAQItemMutation(c.config, OpUpdateOne, withFAQItemID(id))
	return &FAQItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FAQItem.
func (c *FAQItemClient) Delete() *FAQItemDelete {
	mutation := newFAQItemMutation(c.config, OpDelete)
	return &FAQItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FAQItemClient) DeleteOne(_m *FAQItem) *FAQItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FAQItemClient) DeleteOneID(id string) *FAQItemDeleteOne {
	builder := c.Delete().Where(faqitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FAQItemDeleteOne{builder}
}

// Query returns a query builder for FAQItem.
func (c *FAQItemClient) Query() *FAQItemQuery {
	return &FAQItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFAQItem},
		inters: c.Interceptors(),
	}
}

// Get returns a FAQItem entity by its id.
func (c *FAQItemClient) Get(ctx context.Context, id string) (*FAQItem, error) {
	return c.Query().Where(faqitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FAQItemClient) GetX(ctx context.Context, id string) *FAQItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FAQItemClient) Hooks() []Hook {
	return c.hooks.FAQItem
}

// Interceptors returns the client interceptors.
func (c *FAQItemClient) Interceptors() []Interceptor {
	return c.inters.FAQItem
}

func (c *FAQItemClient) mutate(ctx context.Context, m *FAQItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FAQItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FAQItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FAQItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FAQItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FAQItem mutation op: %q", m.Op())
	}
}

// FeedbackResponseClient is a client for the FeedbackResponse schema.
type FeedbackResponseClient struct {
	config
}

// NewFeedbackResponseClient returns a client for the FeedbackResponse from the given config.
func NewFeedbackResponseClient(c config) *FeedbackResponseClient {
	return &FeedbackResponseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feedbackresponse.Hooks(f(g(h())))`.
func (c *FeedbackResponseClient) Use(hooks ...Hook) {
	c.hooks.FeedbackResponse = append(c.hooks.FeedbackResponse, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feedbackresponse.Intercept(f(g(h())))`.
func (c *FeedbackResponseClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeedbackResponse = append(c.inters.FeedbackResponse, interceptors...)
}

// Create returns a builder for creating a FeedbackResponse entity.
func (c *FeedbackResponseClient) Create() *FeedbackResponseCreate {
	mutation := newFeedbackResponseMutation(c.config, OpCreate)
	return &FeedbackResponseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeedbackResponse entities.
func (c *FeedbackResponseClient) CreateBulk(builders ...*FeedbackResponseCreate) *FeedbackResponseCreateBulk {
	return &FeedbackResponseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeedbackResponseClient) MapCreateBulk(slice any, setFunc func(*FeedbackResponseCreate, int)) *FeedbackResponseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeedbackResponseCreateBulk{err: fmt.Errorf("calling to FeedbackResponseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeedbackResponseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeedbackResponseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeedbackResponse.
func (c *FeedbackResponseClient) Update() *FeedbackResponseUpdate {
	mutation := newFeedbackResponseMutation(c.config, OpUpdate)
	return &FeedbackResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeedbackResponseClient) UpdateOne(_m *FeedbackResponse) *FeedbackResponseUpdateOne {
	mutation := newFeedbackResponseMutation(c.config, OpUpdateOne, withFeedbackResponse(_m))
	return &FeedbackResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeedbackResponseClient) UpdateOneID(id string) *FeedbackResponseUpdateOne {
	mutation := newFeedbackResponseMutation(c.config, OpUpdateOne, withFeedbackResponseID(id))
	return &FeedbackResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeedbackResponse.
func (c *FeedbackResponseClient) Delete() *FeedbackResponseDelete {
	mutation := newFeedbackResponseMutation(c.config, OpDelete)
	return &FeedbackResponseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeedbackResponseClient) DeleteOne(_m *FeedbackResponse) *FeedbackResponseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeedbackResponseClient) DeleteOneID(id string) *FeedbackResponseDeleteOne {
	builder := c.Delete().Where(feedbackresponse.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeedbackResponseDeleteOne{builder}
}

// Query returns a query builder for FeedbackResponse.
func (c *FeedbackResponseClient) Query() *FeedbackResponseQuery {
	return &FeedbackResponseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeedbackResponse},
		inters: c.Interceptors(),
	}
}

// Get returns a FeedbackResponse entity by its id.
func (c *FeedbackResponseClient) Get(ctx context.Context, id string) (*FeedbackResponse, error) {
	return c.Query().Where(feedbackresponse.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeedbackResponseClient) GetX(ctx context.Context, id string) *FeedbackResponse {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChat queries the chat edge of a FeedbackResponse.
func (c *FeedbackResponseClient) QueryChat(_m *FeedbackResponse) *ChatQuery {
	query := (&ChatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(feedbackresponse.Table, feedbackresponse.FieldID, id),
			sqlgraph.To(chat.Table, chat.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, feedbackresponse.ChatTable, feedbackresponse.ChatColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FeedbackResponseClient) Hooks() []Hook {
	return c.hooks.FeedbackResponse
}

// Interceptors returns the client interceptors.
func (c *FeedbackResponseClient) Interceptors() []Interceptor {
	return c.inters.FeedbackResponse
}

func (c *FeedbackResponseClient) mutate(ctx context.Context, m *FeedbackResponseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeedbackResponseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeedbackResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeedbackResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeedbackResponseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeedbackResponse mutation op: %q", m.Op())
	}
}

// GlobalSettingsClient is a client for the GlobalSettings schema.
type GlobalSettingsClient struct {
	config
}

// NewGlobalSettingsClient returns a client for the GlobalSettings from the given config.
func NewGlobalSettingsClient(c config) *GlobalSettingsClient {
	return &GlobalSettingsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `globalsettings.Hooks(f(g(h())))`.
func (c *GlobalSettingsClient) Use(hooks ...Hook) {
	c.hooks.GlobalSettings = append(c.hooks.GlobalSettings, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `globalsettings.Intercept(f(g(h())))`.
func (c *GlobalSettingsClient) Intercept(interceptors ...Interceptor) {
	c.inters.GlobalSettings = append(c.inters.GlobalSettings, interceptors...)
}

// Create returns a builder for creating a GlobalSettings entity.
func (c *GlobalSettingsClient) Create() *GlobalSettingsCreate {
	mutation := newGlobalSettingsMutation(c.config, OpCreate)
	return &GlobalSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GlobalSettings entities.
func (c *GlobalSettingsClient) CreateBulk(builders ...*GlobalSettingsCreate) *GlobalSettingsCreateBulk {
	return &GlobalSettingsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GlobalSettingsClient) MapCreateBulk(slice any, setFunc func(*GlobalSettingsCreate, int)) *GlobalSettingsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GlobalSettingsCreateBulk{err: fmt.Errorf("calling to GlobalSettingsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GlobalSettingsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GlobalSettingsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GlobalSettings.
func (c *GlobalSettingsClient) Update() *GlobalSettingsUpdate {
	mutation := newGlobalSettingsMutation(c.config, OpUpdate)
	return &GlobalSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GlobalSettingsClient) UpdateOne(_m *GlobalSettings) *GlobalSettingsUpdateOne {
	mutation := newGlobalSettingsMutation(c.config, OpUpdateOne, withGlobalSettings(_m))
	return &GlobalSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GlobalSettingsClient) UpdateOneID(id string) *GlobalSettingsUpdateOne {
	mutation := newGlobalSettingsMutation(c.config, OpUpdateOne, withGlobalSettingsID(id))
	return &GlobalSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GlobalSettings.
func (c *GlobalSettingsClient) Delete() *GlobalSettingsDelete {
	mutation := newGlobalSettingsMutation(c.config, OpDelete)
	return &GlobalSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GlobalSettingsClient) DeleteOne(_m *GlobalSettings) *GlobalSettingsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GlobalSettingsClient) DeleteOneID(id string) *GlobalSettingsDeleteOne {
	builder := c.Delete().Where(globalsettings.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GlobalSettingsDeleteOne{builder}
}

// Query returns a query builder for GlobalSettings.
func (c *GlobalSettingsClient) Query() *GlobalSettingsQuery {
	return &GlobalSettingsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGlobalSettings},
		inters: c.Interceptors(),
	}
}

// Get returns a GlobalSettings entity by its id.
func (c *GlobalSettingsClient) Get(ctx context.Context, id string) (*GlobalSettings, error) {
	return c.Query().Where(globalsettings.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GlobalSettingsClient) GetX(ctx context.Context, id string) *GlobalSettings {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GlobalSettingsClient) Hooks() []Hook {
	return c.hooks.GlobalSettings
}

// Interceptors returns the client interceptors.
func (c *GlobalSettingsClient) Interceptors() []Interceptor {
	return c.inters.GlobalSettings
}

func (c *GlobalSettingsClient) mutate(ctx context.Context, m *GlobalSettingsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GlobalSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GlobalSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GlobalSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GlobalSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GlobalSettings mutation op: %q", m.Op())
	}
}

// LeaseClient is a client for the Lease schema.
type LeaseClient struct {
	config
}

// NewLeaseClient returns a client for the Lease from the given config.
func NewLeaseClient(c config) *LeaseClient {
	return &LeaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lease.Hooks(f(g(h())))`.
func (c *LeaseClient) Use(hooks ...Hook) {
	c.hooks.Lease = append(c.hooks.Lease, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lease.Intercept(f(g(h())))`.
func (c *LeaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lease = append(c.inters.Lease, interceptors...)
}

// Create returns a builder for creating a Lease entity.
func (c *LeaseClient) Create() *LeaseCreate {
	mutation := newLeaseMutation(c.config, OpCreate)
	return &LeaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lease entities.
func (c *LeaseClient) CreateBulk(builders ...*LeaseCreate) *LeaseCreateBulk {
	return &LeaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeaseClient) MapCreateBulk(slice any, setFunc func(*LeaseCreate, int)) *LeaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeaseCreateBulk{err: fmt.Errorf("calling to LeaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lease.
func (c *LeaseClient) Update() *LeaseUpdate {
	mutation := newLeaseMutation(c.config, OpUpdate)
	return &LeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeaseClient) UpdateOne(_m *Lease) *LeaseUpdateOne {
	mutation := newLeaseMutation(c.config, OpUpdateOne, withLease(_m))
	return &LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeaseClient) UpdateOneID(id string) *LeaseUpdateOne {
	mutation := newLeaseMutation(c.config, OpUpdateOne, withLeaseID(id))
	return &LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lease.
func (c *LeaseClient) Delete() *LeaseDelete {
	mutation := newLeaseMutation(c.config, OpDelete)
	return &LeaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeaseClient) DeleteOne(_m *Lease) *LeaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeaseClient) DeleteOneID(id string) *LeaseDeleteOne {
	builder := c.Delete().Where(lease.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeaseDeleteOne{builder}
}

// Query returns a query builder for Lease.
func (c *LeaseClient) Query() *LeaseQuery {
	return &LeaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLease},
		inters: c.Interceptors(),
	}
}

// Get returns a Lease entity by its id.
func (c *LeaseClient) Get(ctx context.Context, id string) (*Lease, error) {
	return c.Query().Where(lease.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeaseClient) GetX(ctx context.Context, id string) *Lease {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LeaseClient) Hooks() []Hook {
	return c.hooks.Lease
}

// Interceptors returns the client interceptors.
func (c *LeaseClient) Interceptors() []Interceptor {
	return c.inters.Lease
}

func (c *LeaseClient) mutate(ctx context.Context, m *LeaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lease mutation op: %q", m.Op())
	}
}

// SLAAlertClient is a client for the SLAAlert schema.
type SLAAlertClient struct {
	config
}

// NewSLAAlertClient returns a client for the SLAAlert from the given config.
func NewSLAAlertClient(c config) *SLAAlertClient {
	return &SLAAlertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `slaalert.Hooks(f(g(h())))`.
func (c *SLAAlertClient) Use(hooks ...Hook) {
	c.hooks.SLAAlert = append(c.hooks.SLAAlert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `slaalert.Intercept(f(g(h())))`.
func (c *SLAAlertClient) Intercept(interceptors ...Interceptor) {
	c.inters.SLAAlert = append(c.inters.SLAAlert, interceptors...)
}

// Create returns a builder for creating a SLAAlert entity.
func (c *SLAAlertClient) Create() *SLAAlertCreate {
	mutation := newSLAAlertMutation(c.config, OpCreate)
	return &SLAAlertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SLAAlert entities.
func (c *SLAAlertClient) CreateBulk(builders ...*SLAAlertCreate) *SLAAlertCreateBulk {
	return &SLAAlertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SLAAlertClient) MapCreateBulk(slice any, setFunc func(*SLAAlertCreate, int)) *SLAAlertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SLAAlertCreateBulk{err: fmt.Errorf("calling to SLAAlertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SLAAlertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SLAAlertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SLAAlert.
func (c *SLAAlertClient) Update() *SLAAlertUpdate {
	mutation := newSLAAlertMutation(c.config, OpUpdate)
	return &SLAAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SLAAlertClient) UpdateOne(_m *SLAAlert) *SLAAlertUpdateOne {
	mutation := newSLAAlertMutation(c.config, OpUpdateOne, withSLAAlert(_m))
	return &SLAAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SLAAlertClient) UpdateOneID(id string) *SLAAlertUpdateOne {
	mutation := newSLAAlertMutation(c.config, OpUpdateOne, withSLAAlertID(id))
	return &SLAAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SLAAlert.
func (c *SLAAlertClient) Delete() *SLAAlertDelete {
	mutation := newSLAAlertMutation(c.config, OpDelete)
	return &SLAAlertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SLAAlertClient) DeleteOne(_m *SLAAlert) *SLAAlertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SLAAlertClient) DeleteOneID(id string) *SLAAlertDeleteOne {
	builder := c.Delete().Where(slaalert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SLAAlertDeleteOne{builder}
}

// Query returns a query builder for SLAAlert.
func (c *SLAAlertClient) Query() *SLAAlertQuery {
	return &SLAAlertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSLAAlert},
		inters: c.Interceptors(),
	}
}

// Get returns a SLAAlert entity by its id.
func (c *SLAAlertClient) Get(ctx context.Context, id string) (*SLAAlert, error) {
	return c.Query().Where(slaalert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SLAAlertClient) GetX(ctx context.Context, id string) *SLAAlert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a SLAAlert.
func (c *SLAAlertClient) QueryRequest(_m *SLAAlert) *ClientRequestQuery {
	query := (&ClientRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(slaalert.Table, slaalert.FieldID, id),
			sqlgraph.To(clientrequest.Table, clientrequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, slaalert.RequestTable, slaalert.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SLAAlertClient) Hooks() []Hook {
	return c.hooks.SLAAlert
}

// Interceptors returns the client interceptors.
func (c *SLAAlertClient) Interceptors() []Interceptor {
	return c.inters.SLAAlert
}

func (c *SLAAlertClient) mutate(ctx context.Context, m *SLAAlertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SLAAlertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SLAAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SLAAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SLAAlertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SLAAlert mutation op: %q", m.Op())
	}
}

// TimerJobClient is a client for the TimerJob schema.
type TimerJobClient struct {
	config
}

// NewTimerJobClient returns a client for the TimerJob from the given config.
func NewTimerJobClient(c config) *TimerJobClient {
	return &TimerJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `timerjob.Hooks(f(g(h())))`.
func (c *TimerJobClient) Use(hooks ...Hook) {
	c.hooks.TimerJob = append(c.hooks.TimerJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `timerjob.Intercept(f(g(h())))`.
func (c *TimerJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.TimerJob = append(c.inters.TimerJob, interceptors...)
}

// Create returns a builder for creating a TimerJob entity.
func (c *TimerJobClient) Create() *TimerJobCreate {
	mutation := newTimerJobMutation(c.config, OpCreate)
	return &TimerJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TimerJob entities.
func (c *TimerJobClient) CreateBulk(builders ...*TimerJobCreate) *TimerJobCreateBulk {
	return &TimerJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TimerJobClient) MapCreateBulk(slice any, setFunc func(*TimerJobCreate, int)) *TimerJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TimerJobCreateBulk{err: fmt.Errorf("calling to TimerJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TimerJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TimerJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TimerJob.
func (c *TimerJobClient) Update() *TimerJobUpdate {
	mutation := newTimerJobMutation(c.config, OpUpdate)
	return &TimerJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TimerJobClient) UpdateOne(_m *TimerJob) *TimerJobUpdateOne {
	mutation := newTimerJobMutation(c.config, OpUpdateOne, withTimerJob(_m))
	return &TimerJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TimerJobClient) UpdateOneID(id string) *TimerJobUpdateOne {
	mutation := newTimerJobMutation(c.config, OpUpdateOne, withTimerJobID(id))
	return &TimerJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TimerJob.
func (c *TimerJobClient) Delete() *TimerJobDelete {
	mutation := newTimerJobMutation(c.config, OpDelete)
	return &TimerJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TimerJobClient) DeleteOne(_m *TimerJob) *TimerJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TimerJobClient) DeleteOneID(id string) *TimerJobDeleteOne {
	builder := c.Delete().Where(timerjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TimerJobDeleteOne{builder}
}

// Query returns a query builder for TimerJob.
func (c *TimerJobClient) Query() *TimerJobQuery {
	return &TimerJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTimerJob},
		inters: c.Interceptors(),
	}
}

// Get returns a TimerJob entity by its id.
func (c *TimerJobClient) Get(ctx context.Context, id string) (*TimerJob, error) {
	return c.Query().Where(timerjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TimerJobClient) GetX(ctx context.Context, id string) *TimerJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TimerJobClient) Hooks() []Hook {
	return c.hooks.TimerJob
}

// Interceptors returns the client interceptors.
func (c *TimerJobClient) Interceptors() []Interceptor {
	return c.inters.TimerJob
}

func (c *TimerJobClient) mutate(ctx context.Context, m *TimerJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TimerJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TimerJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TimerJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TimerJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TimerJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Chat, ChatInvitation, ChatMessage, ClassificationCache, ClientRequest, FAQItem,
		FeedbackResponse, GlobalSettings, Lease, SLAAlert, TimerJob []ent.Hook
	}
	inters struct {
		Chat, ChatInvitation, ChatMessage, ClassificationCache, ClientRequest, FAQItem,
		FeedbackResponse, GlobalSettings, Lease, SLAAlert, TimerJob []ent.Interceptor
	}
)
