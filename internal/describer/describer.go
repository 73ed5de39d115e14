package describer

import (
	"fmt"
	"iter"
	"slices"

	"github.com/hogwarts-cloud/sandboxctl/internal/models"
	"github.com/samber/lo"
)

const (
	GlobalsSection     = "globals"
	EnvironmentSection = "environment"
	CloudStackSection  = "cloudstack"
)

const (
	ZoneNamePrefix       = "Sandbox-"
	NetworkTypeAdvanced  = "Advanced"
	GuestCIDRAddress     = "10.1.1.0/24"
	PhysicalNetworkName  = "Sandbox-pnet"
	VPCVirtualRouter     = "VpcVirtualRouter"
	NetworkDomainRange   = "Zone"
	ProviderDomainRange  = "ZONE"
	PodName              = "POD0"
	ClusterName          = "C0"
	ClusterTypeCloud     = "CloudManaged"
	HostUsername         = "root"
	HostURLScheme        = "http://"
	PrimaryStorageName   = "PS0"
	TestClientLoggerName = "TestClient"
	TestClientLoggerFile = "/var/log/testclient.log"
	TestCaseLoggerName   = "TestCase"
	TestCaseLoggerFile   = "/var/log/testcase.log"
)

var TrafficTypes = []string{"Guest", "Management", "Public"}

type PropertiesProvider interface {
	Get(section, key string) (string, error)
	Items(section string) (iter.Seq2[string, string], error)
}

// GlobalSettings yields one setting per key of the globals section. The
// sequence may be ranged over any number of times.
func GlobalSettings(props PropertiesProvider) (iter.Seq[models.GlobalSetting], error) {
	items, err := props.Items(GlobalsSection)
	if err != nil {
		return nil, fmt.Errorf("failed to get global settings: %w", err)
	}

	return func(yield func(models.GlobalSetting) bool) {
		for name, value := range items {
			if !yield(models.GlobalSetting{Name: name, Value: value}) {
				return
			}
		}
	}, nil
}

func Describe(props PropertiesProvider) (*models.Configuration, error) {
	l := &lookup{props: props}

	hypervisor := l.get(CloudStackSection, "hypervisor")
	dns := l.get(EnvironmentSection, "dns")

	zone := models.Zone{
		DNS1:             dns,
		InternalDNS1:     dns,
		Name:             ZoneNamePrefix + hypervisor,
		NetworkType:      NetworkTypeAdvanced,
		GuestCIDRAddress: GuestCIDRAddress,
		PhysicalNetworks: []models.PhysicalNetwork{physicalNetwork()},
	}

	pod := models.Pod{
		Name:    PodName,
		Gateway: l.get(CloudStackSection, "private.gateway"),
		StartIP: l.get(CloudStackSection, "private.pod.startip"),
		EndIP:   l.get(CloudStackSection, "private.pod.endip"),
		Netmask: l.get(CloudStackSection, "private.netmask"),
	}

	zone.IPRanges = append(zone.IPRanges, models.IPRange{
		Gateway: l.get(CloudStackSection, "public.gateway"),
		StartIP: l.get(CloudStackSection, "public.vlan.startip"),
		EndIP:   l.get(CloudStackSection, "public.vlan.endip"),
		Netmask: l.get(CloudStackSection, "public.netmask"),
		VLAN:    l.get(CloudStackSection, "public.vlan"),
	})

	cluster := models.Cluster{
		Name:       ClusterName,
		Hypervisor: hypervisor,
		Type:       ClusterTypeCloud,
	}

	cluster.Hosts = append(cluster.Hosts, models.Host{
		Username: HostUsername,
		Password: l.get(CloudStackSection, "host.password"),
		URL:      HostURLScheme + l.get(CloudStackSection, "host"),
	})

	cluster.PrimaryStorages = append(cluster.PrimaryStorages, models.PrimaryStorage{
		Name: PrimaryStorageName,
		URL:  l.get(CloudStackSection, "primary.pool"),
	})

	pod.Clusters = append(pod.Clusters, cluster)
	zone.Pods = append(zone.Pods, pod)

	zone.SecondaryStorages = append(zone.SecondaryStorages, models.SecondaryStorage{
		URL: l.get(CloudStackSection, "secondary.pool"),
	})

	cfg := &models.Configuration{
		Zones: []models.Zone{zone},
		ManagementServers: []models.ManagementServer{
			{
				IP:   l.get(EnvironmentSection, "mshost"),
				Port: models.DefaultManagementServerPort,
			},
		},
		DBServer: &models.DBServer{
			Host:     l.get(EnvironmentSection, "mysql.host"),
			Port:     models.DefaultDBServerPort,
			User:     l.get(EnvironmentSection, "mysql.cloud.user"),
			Password: l.get(EnvironmentSection, "mysql.cloud.passwd"),
			DB:       models.DefaultDBName,
		},
		Loggers: []models.Logger{
			{Name: TestClientLoggerName, File: TestClientLoggerFile},
			{Name: TestCaseLoggerName, File: TestCaseLoggerFile},
		},
	}

	if l.err != nil {
		return nil, fmt.Errorf("failed to describe resources: %w", l.err)
	}

	settings, err := GlobalSettings(props)
	if err != nil {
		return nil, fmt.Errorf("failed to describe resources: %w", err)
	}
	cfg.GlobalConfig = slices.Collect(settings)

	return cfg, nil
}

func physicalNetwork() models.PhysicalNetwork {
	trafficTypes := lo.Map(TrafficTypes, func(typ string, _ int) models.TrafficType {
		return models.TrafficType{Type: typ}
	})

	return models.PhysicalNetwork{
		Name:                 PhysicalNetworkName,
		TrafficTypes:         trafficTypes,
		Providers:            []models.Provider{{Name: VPCVirtualRouter, BroadcastDomainRange: ProviderDomainRange}},
		BroadcastDomainRange: NetworkDomainRange,
	}
}

// lookup keeps the first failed lookup so the tree can be filled in one pass.
type lookup struct {
	props PropertiesProvider
	err   error
}

func (l *lookup) get(section, key string) string {
	if l.err != nil {
		return ""
	}

	value, err := l.props.Get(section, key)
	if err != nil {
		l.err = err
		return ""
	}

	return value
}
