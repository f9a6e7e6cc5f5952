package state

// Document is the persisted form of a simulation. It carries everything
// needed to resume a run exactly where it stopped.
type Document struct {
	Name        string        `yaml:"name,omitempty"`
	ASList      []ASCfg       `yaml:"AS_list"`
	Connection  []Link        `yaml:"connection"`
	Message     []Message     `yaml:"message"`
	ASPA        map[ASN][]ASN `yaml:"ASPA,omitempty"`
	ISecAdopted []ASN         `yaml:"isec_adopted,omitempty"`
	ProConID    map[ASN][]ASN `yaml:"ProConID,omitempty"`
}

// ASCfg is the persisted form of one AS and its routing table.
type ASCfg struct {
	AS           ASN                      `yaml:"AS"`
	Network      Network                  `yaml:"network_address"`
	Policy       []Policy                 `yaml:"policy"`
	RoutingTable map[Network][]RouteEntry `yaml:"routing_table,omitempty"`
}
