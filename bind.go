package apiclient

import (
	"reflect"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Bind assigns the shared client reference to each node and recurses into the
// node's children, so that after binding every group at any depth holds the
// same *Client. A node is bound at most once; nil nodes and nil children are
// skipped, so optional groups may be left unset and attached later with a
// further call to Bind.
func Bind(client *Client, nodes ...Node) {
	for _, node := range nodes {
		if nilNode(node) {
			continue
		}
		node.bind(client)
		Bind(client, node.Children()...)
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// nilNode reports whether a node is nil, including a typed nil pointer
// stored in the interface.
func nilNode(node Node) bool {
	if node == nil {
		return true
	}
	v := reflect.ValueOf(node)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
