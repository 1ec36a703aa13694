package manifest

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/imamik/tfk8s/internal/clusterspec"
	"github.com/imamik/tfk8s/internal/config"
	"github.com/imamik/tfk8s/internal/util/labels"
	"github.com/imamik/tfk8s/internal/util/naming"
	"github.com/imamik/tfk8s/internal/util/ptr"
)

// Shared storage every replica mounts, a convenient scratch area for local tests.
const (
	sharedVolumeName = "shared"
	sharedMountPath  = "/shared"
	sharedHostPath   = "/shared"
)

// JobParams is everything needed to render one job.
type JobParams struct {
	Job         string
	Namespace   string
	Replicas    int
	Port        int
	Image       string
	ClusterSpec string

	// External adds a LoadBalancer Service for replica 0.
	External bool
}

// JobsFor splits a validated topology into worker and parameter server
// parameters, in output order. Both jobs carry the same cluster spec.
func JobsFor(t config.Topology) []JobParams {
	spec := clusterspec.FromTopology(t).String()
	return []JobParams{
		{
			Job:         labels.JobWorker,
			Namespace:   t.Namespace,
			Replicas:    t.Workers,
			Port:        t.Port,
			Image:       t.Image,
			ClusterSpec: spec,
			External:    t.RequestLoadBalancer,
		},
		{
			Job:         labels.JobParameterServer,
			Namespace:   t.Namespace,
			Replicas:    t.ParameterServers,
			Port:        t.Port,
			Image:       t.Image,
			ClusterSpec: spec,
		},
	}
}

// Objects returns the objects of one job in output order.
func Objects(p JobParams) []client.Object {
	objs := []client.Object{Service(p), StatefulSet(p)}
	if p.External {
		objs = append(objs, ExternalService(p, 0))
	}
	return objs
}

func objectMeta(name string, p JobParams) metav1.ObjectMeta {
	return metav1.ObjectMeta{
		Name:      name,
		Namespace: p.Namespace,
		Labels: labels.NewLabelBuilder(p.Job).
			WithManagedBy(labels.ManagedByTfk8s).
			Build(),
	}
}

func servicePorts(port int) []corev1.ServicePort {
	return []corev1.ServicePort{{
		Port:       int32(port),
		TargetPort: intstr.FromInt32(int32(port)),
	}}
}

// Service builds the headless service that gives every replica of the job a
// stable DNS name.
func Service(p JobParams) *corev1.Service {
	return &corev1.Service{
		ObjectMeta: objectMeta(naming.Job(p.Job), p),
		Spec: corev1.ServiceSpec{
			Type:      corev1.ServiceTypeClusterIP,
			ClusterIP: corev1.ClusterIPNone,
			Ports:     servicePorts(p.Port),
			Selector:  labels.Selector(p.Job),
		},
	}
}

// ExternalService builds a LoadBalancer service for a single replica so
// clients outside the cluster can reach it.
func ExternalService(p JobParams, index int) *corev1.Service {
	pod := naming.Replica(p.Job, index)
	return &corev1.Service{
		ObjectMeta: objectMeta(naming.ExternalService(p.Job, index), p),
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeLoadBalancer,
			Ports:    servicePorts(p.Port),
			Selector: labels.NewLabelBuilder(p.Job).WithPodName(pod).Build(),
		},
	}
}

// StatefulSet builds the replica set running the TensorFlow servers of the job.
func StatefulSet(p JobParams) *appsv1.StatefulSet {
	name := naming.Job(p.Job)
	return &appsv1.StatefulSet{
		ObjectMeta: objectMeta(name, p),
		Spec: appsv1.StatefulSetSpec{
			ServiceName: name,
			Replicas:    ptr.Int32(int32(p.Replicas)),
			Selector: &metav1.LabelSelector{
				MatchLabels: labels.Selector(p.Job),
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: labels.Selector(p.Job),
				},
				Spec: corev1.PodSpec{
					TerminationGracePeriodSeconds: ptr.Int64(0),
					Containers:                    []corev1.Container{container(p)},
					Volumes: []corev1.Volume{{
						Name: sharedVolumeName,
						VolumeSource: corev1.VolumeSource{
							HostPath: &corev1.HostPathVolumeSource{Path: sharedHostPath},
						},
					}},
				},
			},
		},
	}
}

func container(p JobParams) corev1.Container {
	return corev1.Container{
		Name:  naming.Container(p.Job),
		Image: p.Image,
		Args: []string{
			"--cluster_spec=" + p.ClusterSpec,
			"--job_name=" + p.Job,
		},
		Ports: []corev1.ContainerPort{{ContainerPort: int32(p.Port)}},
		VolumeMounts: []corev1.VolumeMount{{
			Name:      sharedVolumeName,
			MountPath: sharedMountPath,
		}},
	}
}
