package naming

import "fmt"

// Naming functions for job resources.
// Service and StatefulSet names must stay in sync with the ordinal hostnames
// that the cluster spec advertises, otherwise peers cannot resolve each other.

const resourcePrefix = "tf"

func Job(job string) string {
	return fmt.Sprintf("%s-%s", resourcePrefix, job)
}

func Container(job string) string {
	return Job(job)
}

func Replica(job string, index int) string {
	return fmt.Sprintf("%s-%d", Job(job), index)
}

func ExternalService(job string, index int) string {
	return fmt.Sprintf("%s-external", Replica(job, index))
}

// ReplicaFQDN returns the stable DNS name a StatefulSet replica gets through
// its headless governing service.
func ReplicaFQDN(job string, index int, namespace, domain string) string {
	return fmt.Sprintf("%s.%s.%s.svc.%s", Replica(job, index), Job(job), namespace, domain)
}
