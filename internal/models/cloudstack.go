package models

const (
	DefaultManagementServerPort = 8096
	DefaultDBServerPort         = 3306
	DefaultDBName               = "cloud"
)

type Configuration struct {
	Zones             []Zone             `json:"zones" yaml:"zones"`
	ManagementServers []ManagementServer `json:"mgtSvr" yaml:"mgtSvr"`
	DBServer          *DBServer          `json:"dbSvr,omitempty" yaml:"dbSvr,omitempty"`
	GlobalConfig      []GlobalSetting    `json:"globalConfig" yaml:"globalConfig"`
	Loggers           []Logger           `json:"logger" yaml:"logger"`
}

type Zone struct {
	DNS1              string             `json:"dns1,omitempty" yaml:"dns1,omitempty"`
	InternalDNS1      string             `json:"internaldns1,omitempty" yaml:"internaldns1,omitempty"`
	Name              string             `json:"name" yaml:"name"`
	NetworkType       string             `json:"networktype" yaml:"networktype"`
	GuestCIDRAddress  string             `json:"guestcidraddress,omitempty" yaml:"guestcidraddress,omitempty"`
	PhysicalNetworks  []PhysicalNetwork  `json:"physical_networks" yaml:"physical_networks"`
	Pods              []Pod              `json:"pods" yaml:"pods"`
	IPRanges          []IPRange          `json:"ipranges" yaml:"ipranges"`
	SecondaryStorages []SecondaryStorage `json:"secondaryStorages" yaml:"secondaryStorages"`
}

type PhysicalNetwork struct {
	Name                 string        `json:"name" yaml:"name"`
	TrafficTypes         []TrafficType `json:"traffictypes" yaml:"traffictypes"`
	Providers            []Provider    `json:"providers" yaml:"providers"`
	BroadcastDomainRange string        `json:"broadcastdomainrange,omitempty" yaml:"broadcastdomainrange,omitempty"`
}

type TrafficType struct {
	Type string `json:"typ" yaml:"typ"`
}

type Provider struct {
	Name                 string `json:"name" yaml:"name"`
	BroadcastDomainRange string `json:"broadcastdomainrange,omitempty" yaml:"broadcastdomainrange,omitempty"`
}

type Pod struct {
	Name     string    `json:"name" yaml:"name"`
	Gateway  string    `json:"gateway" yaml:"gateway"`
	StartIP  string    `json:"startip" yaml:"startip"`
	EndIP    string    `json:"endip" yaml:"endip"`
	Netmask  string    `json:"netmask" yaml:"netmask"`
	Clusters []Cluster `json:"clusters" yaml:"clusters"`
}

type Cluster struct {
	Name            string           `json:"clustername" yaml:"clustername"`
	Hypervisor      string           `json:"hypervisor" yaml:"hypervisor"`
	Type            string           `json:"clustertype" yaml:"clustertype"`
	Hosts           []Host           `json:"hosts" yaml:"hosts"`
	PrimaryStorages []PrimaryStorage `json:"primaryStorages" yaml:"primaryStorages"`
}

type Host struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	URL      string `json:"url" yaml:"url"`
}

type PrimaryStorage struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

type SecondaryStorage struct {
	URL string `json:"url" yaml:"url"`
}

type IPRange struct {
	Gateway string `json:"gateway" yaml:"gateway"`
	StartIP string `json:"startip" yaml:"startip"`
	EndIP   string `json:"endip" yaml:"endip"`
	Netmask string `json:"netmask" yaml:"netmask"`
	VLAN    string `json:"vlan,omitempty" yaml:"vlan,omitempty"`
}

type ManagementServer struct {
	IP   string `json:"mgtSvrIp" yaml:"mgtSvrIp"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty"`
}

type DBServer struct {
	Host     string `json:"dbSvr" yaml:"dbSvr"`
	Port     int    `json:"port,omitempty" yaml:"port,omitempty"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"passwd" yaml:"passwd"`
	DB       string `json:"db,omitempty" yaml:"db,omitempty"`
}

// GlobalSetting is a single name/value pair applied to the management server
// global configuration.
type GlobalSetting struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

type Logger struct {
	Name string `json:"name" yaml:"name"`
	File string `json:"file" yaml:"file"`
}
