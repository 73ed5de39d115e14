package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hogwarts-cloud/sandboxctl/internal/models"
	"github.com/hogwarts-cloud/sandboxctl/internal/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const setupProperties = `[globals]
expunge.delay = 60

[environment]
dns = 8.8.8.8
mshost = 10.0.0.2
mysql.host = 10.0.0.3
mysql.cloud.user = cloud
mysql.cloud.passwd = cloud

[cloudstack]
hypervisor = xenserver
host = 10.0.0.5
host.password = password
private.gateway = 10.0.0.1
private.pod.startip = 10.0.0.100
private.pod.endip = 10.0.0.120
private.netmask = 255.255.255.0
public.gateway = 172.16.0.1
public.vlan.startip = 172.16.0.100
public.vlan.endip = 172.16.0.120
public.netmask = 255.255.255.0
public.vlan = 100
primary.pool = nfs://10.0.0.4/export/primary
secondary.pool = nfs://10.0.0.4/export/secondary
`

func Test_root(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "setup.properties")
	output := filepath.Join(dir, "sandbox.cfg")
	require.NoError(t, os.WriteFile(input, []byte(setupProperties), 0644))

	t.Run("happy path", func(t *testing.T) {
		root.SetArgs([]string{"-i", input, "-o", output, "--format=json", "--log-level=error"})
		require.NoError(t, root.Execute())

		content, err := os.ReadFile(output)
		require.NoError(t, err)

		sandbox := models.Configuration{}
		require.NoError(t, json.Unmarshal(content, &sandbox))

		require.Len(t, sandbox.Zones, 1)
		assert.Equal(t, "Sandbox-xenserver", sandbox.Zones[0].Name)
		assert.Equal(t, "http://10.0.0.5", sandbox.Zones[0].Pods[0].Clusters[0].Hosts[0].URL)
		assert.Equal(t, []models.GlobalSetting{{Name: "expunge.delay", Value: "60"}}, sandbox.GlobalConfig)
	})

	t.Run("missing key", func(t *testing.T) {
		broken := filepath.Join(dir, "broken.properties")
		require.NoError(t, os.WriteFile(broken, []byte("[globals]\n[environment]\n[cloudstack]\n"), 0644))

		root.SetArgs([]string{"-i", broken, "-o", output, "--format=json", "--log-level=error"})
		err := root.Execute()
		assert.ErrorIs(t, err, properties.ErrMissingKey)
	})

	t.Run("missing input", func(t *testing.T) {
		root.SetArgs([]string{"-i", filepath.Join(dir, "absent.properties"), "-o", output, "--format=json", "--log-level=error"})
		assert.Error(t, root.Execute())
	})
}
