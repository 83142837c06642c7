package socket

import (
	"cinelogBackend/auth"
	"cinelogBackend/events"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	socketio "github.com/zishang520/socket.io/socket"
)

type (
	// UpdateNamespace Manages the authenticated '/library-updates' socket.io namespace.
	// Library mutations are forwarded to every connected session of the owning user so
	// other tabs and devices can refresh their local state.
	UpdateNamespace interface {
		// SendToUser Sends a library update to all connected sessions of a single user.
		SendToUser(msg events.LibraryUpdateData, userId string)
	}

	updateNamespace struct {
		// All connected sessions grouped by user ID. One user can hold several sessions.
		connectedClients      map[string][]*SocketConnectedUser
		connectedClientsMutex sync.Mutex

		socketManager SocketManager
		namespace     socketio.NamespaceInterface
	}
)

const updateNamespaceName = "/library-updates"

func CreateUpdateNamespace(socketManager SocketManager) UpdateNamespace {
	manager := &updateNamespace{
		connectedClients: make(map[string][]*SocketConnectedUser),
		socketManager:    socketManager,
	}

	manager.namespace = socketManager.Server().Of(updateNamespaceName, nil)
	manager.namespace.Use(socketManager.SocketAuthenticatorMiddleware)

	_ = manager.namespace.On("connection", manager.handleConnection)

	return manager
}

func (m *updateNamespace) SendToUser(msg events.LibraryUpdateData, userId string) {
	m.connectedClientsMutex.Lock()
	clients := slices.Clone(m.connectedClients[userId])
	m.connectedClientsMutex.Unlock()

	for _, client := range clients {
		if err := client.socket.Emit("data", msg); err != nil {
			log.Warnf("Failed to emit library update to client: %s", err.Error())
		}
	}
}

func (m *updateNamespace) handleConnection(clients ...any) {
	client, ok := clients[0].(*socketio.Socket)
	if !ok {
		log.Errorf("Received invalid connection: %+v", clients)
		return
	}

	var authUser *auth.AuthenticatedUser
	if accessToken, ok := client.Handshake().Auth.(map[string]any)["token"].(string); !ok {
		return
	} else if authUser = m.socketManager.GetAuthUser(accessToken); authUser == nil {
		// This is just for consistency, as non-authenticated users should never make it past the middleware
		return
	}

	socketClient := &SocketConnectedUser{
		AuthenticatedUser: *authUser,
		socket:            client,
	}

	m.connectedClientsMutex.Lock()
	m.connectedClients[authUser.UserId] = append(m.connectedClients[authUser.UserId], socketClient)
	m.connectedClientsMutex.Unlock()

	_ = client.On("disconnect", func(clients ...any) {
		log.Info("User disconnected from library updates", "user", authUser.UserId)

		m.connectedClientsMutex.Lock()
		sessions := m.connectedClients[authUser.UserId]
		if i := slices.Index(sessions, socketClient); i > -1 {
			m.connectedClients[authUser.UserId] = append(sessions[:i], sessions[i+1:]...)
		}
		m.connectedClientsMutex.Unlock()
	})

	log.Info("User connected to library updates", "user", authUser.UserId)
}
