package state

import "log/slog"

// Message is one entry of the propagation queue.
//
// Init carries only Src: the AS that asks its neighbours for their tables.
// Update carries a route announcement sent from Src to Dst. ComeFrom is
// filled by the engine once the link between the endpoints is resolved and
// is never persisted.
type Message struct {
	Kind     MessageKind `yaml:"type"`
	Src      ASN         `yaml:"src"`
	Dst      ASN         `yaml:"dst,omitempty"`
	Network  Network     `yaml:"network,omitempty"`
	Path     Path        `yaml:"path,omitempty"`
	ComeFrom Role        `yaml:"-"`
}

func InitMessage(src ASN) Message {
	return Message{Kind: MsgInit, Src: src}
}

func UpdateMessage(src, dst ASN, network Network, path Path) Message {
	return Message{
		Kind:    MsgUpdate,
		Src:     src,
		Dst:     dst,
		Network: network,
		Path:    path,
	}
}

func (m Message) LogValue() slog.Value {
	if m.Kind == MsgInit {
		return slog.GroupValue(
			slog.String("kind", m.Kind.String()),
			slog.Any("src", m.Src),
		)
	}
	return slog.GroupValue(
		slog.String("kind", m.Kind.String()),
		slog.Any("src", m.Src),
		slog.Any("dst", m.Dst),
		slog.String("network", string(m.Network)),
		slog.String("path", m.Path.String()),
	)
}
