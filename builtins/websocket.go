// ==============================================================================================
// FILE: builtins/websocket.go
// ==============================================================================================
// PURPOSE: ws_connect/சாக்கெட்_இணை, ws_send/சாக்கெட்_அனுப்பு, ws_receive/சாக்கெட்_படி,
//          ws_close/சாக்கெட்_மூடு. Connections are handles (small integers) into a
//          package-level, mutex-guarded map — the Go analogue of the reference
//          implementation's lazy_static!-guarded connection table.
// ==============================================================================================

package builtins

import (
	"fmt"
	"sync"

	"agam/object"

	"github.com/gorilla/websocket"
	"github.com/juju/errors"
)

var (
	wsMu      sync.Mutex
	wsConns   = make(map[int64]*websocket.Conn)
	wsCounter int64
)

func websocketBuiltins() []entry {
	return []entry{
		{
			names: []string{"ws_connect", "சாக்கெட்_இணை"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				url, err := oneString("ws_connect", args)
				if err != nil {
					return nil, err
				}
				conn, _, dialErr := websocket.DefaultDialer.Dial(url, nil)
				if dialErr != nil {
					return nil, errors.Annotatef(dialErr, "%q-உடன் இணைக்க முடியவில்லை", url)
				}

				wsMu.Lock()
				wsCounter++
				handle := wsCounter
				wsConns[handle] = conn
				wsMu.Unlock()

				return &object.Number{Value: float64(handle)}, nil
			},
		},
		{
			names: []string{"ws_send", "சாக்கெட்_அனுப்பு"},
			arity: 2,
			fn: func(args []object.Object) (object.Object, error) {
				conn, err := wsLookup(args[0])
				if err != nil {
					return nil, err
				}
				msg, err := oneString("ws_send", args[1:])
				if err != nil {
					return nil, err
				}
				if writeErr := conn.WriteMessage(websocket.TextMessage, []byte(msg)); writeErr != nil {
					return nil, errors.Annotate(writeErr, "ws_send தோல்வியடைந்தது")
				}
				return object.NULL, nil
			},
		},
		{
			names: []string{"ws_receive", "சாக்கெட்_படி"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				conn, err := wsLookup(args[0])
				if err != nil {
					return nil, err
				}
				_, data, readErr := conn.ReadMessage()
				if readErr != nil {
					return nil, errors.Annotate(readErr, "ws_receive தோல்வியடைந்தது")
				}
				return &object.String{Value: string(data)}, nil
			},
		},
		{
			names: []string{"ws_close", "சாக்கெட்_மூடு"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				handle, ok := args[0].(*object.Number)
				if !ok {
					return nil, fmt.Errorf("ws_close-இன் வாதம் ws_connect திரும்பிய handle ஆக இருக்க வேண்டும்")
				}
				wsMu.Lock()
				conn, found := wsConns[int64(handle.Value)]
				delete(wsConns, int64(handle.Value))
				wsMu.Unlock()
				if !found {
					return nil, fmt.Errorf("தெரியாத socket handle: %v", handle.Value)
				}
				if closeErr := conn.Close(); closeErr != nil {
					return nil, errors.Annotate(closeErr, "ws_close தோல்வியடைந்தது")
				}
				return object.NULL, nil
			},
		},
	}
}

func wsLookup(arg object.Object) (*websocket.Conn, error) {
	handle, ok := arg.(*object.Number)
	if !ok {
		return nil, fmt.Errorf("ws_connect திரும்பிய handle எண்ணாக இருக்க வேண்டும்")
	}
	wsMu.Lock()
	conn, found := wsConns[int64(handle.Value)]
	wsMu.Unlock()
	if !found {
		return nil, fmt.Errorf("தெரியாத socket handle: %v", handle.Value)
	}
	return conn, nil
}
