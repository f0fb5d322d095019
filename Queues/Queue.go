package Queues

// Queue is a FIFO container. Pop on an empty Queue returns *EmptyQueueError.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	//Peek the head without removing it. Returns the zero value when empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable circular array.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing array to fit the current content.
	Shrink()
	//Clear the content, keeping the backing array.
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
