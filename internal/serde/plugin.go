package serde

// Plugin serdes run behind a PluginClient: a gRPC plugin process or an
// implementation compiled into the binary. The registry sees them as plain
// deserializers named "plugin:<serde>".
import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/cxm940188/kafka-ui/api/proto/v1"
)

const (
	PluginPrefix         = "plugin:"
	defaultPluginTimeout = 2 * time.Second
)

type PluginClient interface {
	Metadata(ctx context.Context) (*pb.MetadataResponse, error)
	Health(ctx context.Context) (*pb.HealthResponse, error)
	Deserialize(ctx context.Context, req *pb.DeserializeRequest) (*pb.DeserializeResponse, error)
	Close() error
}

// GRPCClient dials a plugin over gRPC.
type GRPCClient struct {
	conn *grpc.ClientConn
	svc  pb.SerdePluginClient
}

func NewGRPCClient(target string, opts ...grpc.DialOption) (*GRPCClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, err
	}
	return &GRPCClient{
		conn: conn,
		svc:  pb.NewSerdePluginClient(conn),
	}, nil
}

func (c *GRPCClient) Metadata(ctx context.Context) (*pb.MetadataResponse, error) {
	return c.svc.Metadata(ctx, &pb.MetadataRequest{})
}
func (c *GRPCClient) Health(ctx context.Context) (*pb.HealthResponse, error) {
	return c.svc.Health(ctx, &pb.HealthRequest{})
}
func (c *GRPCClient) Deserialize(ctx context.Context, req *pb.DeserializeRequest) (*pb.DeserializeResponse, error) {
	return c.svc.Deserialize(ctx, req)
}
func (c *GRPCClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// InProcessClient adapts a plugin implementation compiled into the binary.
type InProcessClient struct {
	impl pb.SerdePluginServer
}

func NewInProcessClient(impl pb.SerdePluginServer) *InProcessClient {
	return &InProcessClient{impl: impl}
}
func (c *InProcessClient) Metadata(ctx context.Context) (*pb.MetadataResponse, error) {
	return c.impl.Metadata(ctx, &pb.MetadataRequest{})
}
func (c *InProcessClient) Health(ctx context.Context) (*pb.HealthResponse, error) {
	return c.impl.Health(ctx, &pb.HealthRequest{})
}
func (c *InProcessClient) Deserialize(ctx context.Context, req *pb.DeserializeRequest) (*pb.DeserializeResponse, error) {
	return c.impl.Deserialize(ctx, req)
}
func (c *InProcessClient) Close() error { return nil }

// PluginConfig locates one plugin process.
type PluginConfig struct {
	Name    string        `koanf:"name" yaml:"name"`
	Address string        `koanf:"address" yaml:"address"`
	Timeout time.Duration `koanf:"timeout" yaml:"timeout"` // per Deserialize call
}

// RegisterPlugin checks that c is healthy and registers every serde it
// advertises. It returns the registered names.
func RegisterPlugin(ctx context.Context, c PluginClient, timeout time.Duration) ([]string, error) {
	h, err := c.Health(ctx)
	if err != nil {
		return nil, fmt.Errorf("health: %w", err)
	}
	if !h.GetOk() {
		return nil, fmt.Errorf("unhealthy: %s", h.GetDetails())
	}
	md, err := c.Metadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	if len(md.GetSerdes()) == 0 {
		return nil, fmt.Errorf("plugin %q offers no serdes", md.GetName())
	}
	if timeout <= 0 {
		timeout = defaultPluginTimeout
	}
	names := make([]string, 0, len(md.GetSerdes()))
	for _, s := range md.GetSerdes() {
		name := PluginPrefix + s
		Register(name, pluginDeserializer(c, s, timeout))
		names = append(names, name)
	}
	return names, nil
}

func pluginDeserializer(c PluginClient, serde string, timeout time.Duration) Deserializer {
	return func(data []byte) (string, error) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := c.Deserialize(ctx, &pb.DeserializeRequest{Serde: serde, Data: data})
		if err != nil {
			return "", err
		}
		return resp.GetText(), nil
	}
}

// Plugins holds the plugin connections opened by LoadPlugins.
type Plugins struct {
	clients []PluginClient
	names   []string
}

// LoadPlugins dials every configured plugin and registers its serdes. On
// error the plugins already loaded are closed again.
func LoadPlugins(ctx context.Context, cfgs []PluginConfig) (*Plugins, error) {
	p := &Plugins{}
	for _, cfg := range cfgs {
		if cfg.Address == "" {
			_ = p.Close()
			return nil, fmt.Errorf("serde plugin %q: address is required", cfg.Name)
		}
		c, err := NewGRPCClient(cfg.Address)
		if err != nil {
			_ = p.Close()
			return nil, fmt.Errorf("serde plugin %q: %w", cfg.Name, err)
		}
		p.clients = append(p.clients, c)
		names, err := RegisterPlugin(ctx, c, cfg.Timeout)
		if err != nil {
			_ = p.Close()
			return nil, fmt.Errorf("serde plugin %q: %w", cfg.Name, err)
		}
		p.names = append(p.names, names...)
	}
	return p, nil
}

func (p *Plugins) Names() []string {
	if p == nil {
		return nil
	}
	return p.names
}

// Close unregisters the plugin serdes and closes their connections.
func (p *Plugins) Close() error {
	if p == nil {
		return nil
	}
	for _, n := range p.names {
		unregister(n)
	}
	var errs []error
	for _, c := range p.clients {
		errs = append(errs, c.Close())
	}
	p.clients, p.names = nil, nil
	return errors.Join(errs...)
}
