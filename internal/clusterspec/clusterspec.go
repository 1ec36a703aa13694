package clusterspec

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/imamik/tfk8s/internal/config"
	"github.com/imamik/tfk8s/internal/util/labels"
	"github.com/imamik/tfk8s/internal/util/naming"
)

const (
	jobSeparator     = ","
	nameSeparator    = "|"
	addressSeparator = ";"
)

// ErrMalformed is returned by Parse for strings that are not a cluster spec.
var ErrMalformed = errors.New("malformed cluster spec")

// Addressing maps a job replica to the hostname peers should dial.
type Addressing func(job string, index int) string

// FullyQualified addresses replicas by their stable DNS name under the
// job's headless service.
func FullyQualified(namespace, domain string) Addressing {
	return func(job string, index int) string {
		return naming.ReplicaFQDN(job, index, namespace, domain)
	}
}

// ShortNames addresses replicas by bare pod name. Only resolvable when the
// pod's search path covers the governing service.
func ShortNames(job string, index int) string {
	return naming.Replica(job, index)
}

// AddressingFor returns the strategy selected by a topology.
func AddressingFor(t config.Topology) Addressing {
	if t.Addressing == config.AddressingShort {
		return ShortNames
	}
	return FullyQualified(t.Namespace, t.ClusterDomain)
}

// Job is one named group of peers.
type Job struct {
	Name      string
	Addresses []string
}

// ClusterSpec is the ordered list of jobs of a cluster.
type ClusterSpec []Job

// Build lists worker then parameter server addresses, each in ordinal order.
func Build(workers, parameterServers, port int, addr Addressing) ClusterSpec {
	return ClusterSpec{
		buildJob(labels.JobWorker, workers, port, addr),
		buildJob(labels.JobParameterServer, parameterServers, port, addr),
	}
}

// FromTopology builds the cluster spec of a validated topology.
func FromTopology(t config.Topology) ClusterSpec {
	return Build(t.Workers, t.ParameterServers, t.Port, AddressingFor(t))
}

// Encode returns the wire form of Build.
func Encode(workers, parameterServers, port int, addr Addressing) string {
	return Build(workers, parameterServers, port, addr).String()
}

func buildJob(name string, replicas, port int, addr Addressing) Job {
	job := Job{Name: name, Addresses: make([]string, 0, max(replicas, 0))}
	p := strconv.Itoa(port)
	for i := 0; i < replicas; i++ {
		job.Addresses = append(job.Addresses, net.JoinHostPort(addr(name, i), p))
	}
	return job
}

func (cs ClusterSpec) String() string {
	parts := make([]string, 0, len(cs))
	for _, j := range cs {
		parts = append(parts, j.Name+nameSeparator+strings.Join(j.Addresses, addressSeparator))
	}
	return strings.Join(parts, jobSeparator)
}

// Job returns the job with the given name.
func (cs ClusterSpec) Job(name string) (Job, bool) {
	for _, j := range cs {
		if j.Name == name {
			return j, true
		}
	}
	return Job{}, false
}

// Size returns the number of addresses across all jobs.
func (cs ClusterSpec) Size() int {
	var n int
	for _, j := range cs {
		n += len(j.Addresses)
	}
	return n
}

// Parse decodes the wire form produced by ClusterSpec.String.
func Parse(s string) (ClusterSpec, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrMalformed)
	}

	var cs ClusterSpec
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, jobSeparator) {
		name, list, ok := strings.Cut(part, nameSeparator)
		if !ok {
			return nil, fmt.Errorf("%w: job %q has no %q separator", ErrMalformed, part, nameSeparator)
		}
		if name == "" {
			return nil, fmt.Errorf("%w: job with empty name", ErrMalformed)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate job %q", ErrMalformed, name)
		}
		seen[name] = true
		if list == "" {
			return nil, fmt.Errorf("%w: job %q has no addresses", ErrMalformed, name)
		}

		job := Job{Name: name}
		for _, a := range strings.Split(list, addressSeparator) {
			if err := checkAddress(a); err != nil {
				return nil, fmt.Errorf("%w: job %q: %v", ErrMalformed, name, err)
			}
			job.Addresses = append(job.Addresses, a)
		}
		cs = append(cs, job)
	}
	return cs, nil
}

func checkAddress(a string) error {
	host, port, err := net.SplitHostPort(a)
	if err != nil {
		return err
	}
	if host == "" {
		return fmt.Errorf("address %q has no host", a)
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return fmt.Errorf("address %q has invalid port", a)
	}
	return nil
}
