package namecache

// lruNode is a node in a doubly-linked eviction list.
// The node carries its key for O(1) deletion from the owning map.
type lruNode struct {
	key  string
	prev *lruNode
	next *lruNode
}

// lruList is a doubly-linked list for LRU eviction.
// The list is not thread-safe; the owning shard locks around it.
//
// The head is the most recently used, tail is least recently used.
type lruList struct {
	head *lruNode
	tail *lruNode
	len  int
}

// pushFront adds a new node at the front (most recently used).
// Returns the created node for later access.
func (l *lruList) pushFront(key string) *lruNode {
	node := &lruNode{key: key}
	if l.head == nil {
		// Empty list
		l.head = node
		l.tail = node
	} else {
		// Insert at front
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.len++
	return node
}

// moveToFront moves an existing node to the front (most recently used).
func (l *lruList) moveToFront(node *lruNode) {
	if node == nil || node == l.head {
		return
	}

	// Remove from current position
	l.unlink(node)

	// Insert at front
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

// removeOldest removes and returns the key of the least recently used
// node. Returns the empty string and false if the list is empty.
func (l *lruList) removeOldest() (string, bool) {
	if l.tail == nil {
		return "", false
	}

	node := l.tail
	l.unlink(node)
	return node.key, true
}

// unlink removes a node from the list without clearing the node's
// pointers. Used internally by moveToFront and removeOldest.
func (l *lruList) unlink(node *lruNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}

	node.prev = nil
	node.next = nil
	l.len--
}
