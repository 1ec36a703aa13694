package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/imamik/tfk8s/internal/config"
)

func TestRender_DefaultTopology(t *testing.T) {
	t.Parallel()
	out, err := Render(config.Default())
	require.NoError(t, err)

	docs := strings.Split(string(out), Separator)
	require.Len(t, docs, 4, "service and statefulset per job")

	assert.Contains(t, docs[0], "kind: Service")
	assert.Contains(t, docs[0], "name: tf-worker\n")
	assert.Contains(t, docs[1], "kind: StatefulSet")
	assert.Contains(t, docs[1], "replicas: 2\n")
	assert.Contains(t, docs[2], "name: tf-ps\n")
	assert.Contains(t, docs[3], "replicas: 1\n")

	assert.Contains(t, string(out), "apiVersion: apps/v1\n")
	assert.NotContains(t, string(out), "status:")
	assert.NotContains(t, string(out), "creationTimestamp")
	assert.NotContains(t, string(out), "resources: {}")
}

func TestRender_DecodesBack(t *testing.T) {
	t.Parallel()
	topo := config.Default()
	topo.Workers = 4
	topo.ParameterServers = 2

	out, err := Render(topo)
	require.NoError(t, err)

	objs, err := Decode(out)
	require.NoError(t, err)
	require.Len(t, objs, 4)

	workerSvc, ok := objs[0].(*corev1.Service)
	require.True(t, ok)
	assert.Equal(t, "tf-worker", workerSvc.Name)
	assert.Equal(t, corev1.ClusterIPNone, workerSvc.Spec.ClusterIP)

	workerSts, ok := objs[1].(*appsv1.StatefulSet)
	require.True(t, ok)
	assert.Equal(t, int32(4), *workerSts.Spec.Replicas)

	psSts, ok := objs[3].(*appsv1.StatefulSet)
	require.True(t, ok)
	assert.Equal(t, int32(2), *psSts.Spec.Replicas)
	assert.Equal(t, "--job_name=ps", psSts.Spec.Template.Spec.Containers[0].Args[1])

	// Both jobs advertise the same peer list.
	assert.Equal(t,
		workerSts.Spec.Template.Spec.Containers[0].Args[0],
		psSts.Spec.Template.Spec.Containers[0].Args[0])
}

func TestRender_LoadBalancer(t *testing.T) {
	t.Parallel()
	topo := config.Default()
	topo.RequestLoadBalancer = true

	out, err := Render(topo)
	require.NoError(t, err)

	objs, err := Decode(out)
	require.NoError(t, err)
	require.Len(t, objs, 5)

	ext, ok := objs[2].(*corev1.Service)
	require.True(t, ok, "external service closes the worker block")
	assert.Equal(t, "tf-worker-0-external", ext.Name)
	assert.Equal(t, corev1.ServiceTypeLoadBalancer, ext.Spec.Type)

	for _, i := range []int{0, 3} {
		svc := objs[i].(*corev1.Service)
		assert.Equal(t, corev1.ClusterIPNone, svc.Spec.ClusterIP, "governing services stay headless")
	}
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()
	topo := config.Default()
	topo.Workers = 9
	topo.RequestLoadBalancer = true

	first, err := Render(topo)
	require.NoError(t, err)
	second, err := Render(topo)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRender_ImageOnlyChangesImageLines(t *testing.T) {
	t.Parallel()
	a := config.Default()
	b := config.Default()
	b.Image = "example.com/tf/server:2.15"

	outA, err := Render(a)
	require.NoError(t, err)
	outB, err := Render(b)
	require.NoError(t, err)

	linesA := strings.Split(string(outA), "\n")
	linesB := strings.Split(string(outB), "\n")
	require.Equal(t, len(linesA), len(linesB))

	changed := 0
	for i := range linesA {
		if linesA[i] == linesB[i] {
			continue
		}
		changed++
		assert.Contains(t, linesA[i], "image:")
		assert.Contains(t, linesB[i], "image: example.com/tf/server:2.15")
	}
	assert.Equal(t, 2, changed, "one image line per job")
}

func TestTypedRenderer(t *testing.T) {
	t.Parallel()
	var r Renderer = TypedRenderer{}

	viaInterface, err := r.Render(config.Default())
	require.NoError(t, err)
	direct, err := Render(config.Default())
	require.NoError(t, err)
	assert.Equal(t, direct, viaInterface)
}
