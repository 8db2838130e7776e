package mocks

//go:generate go run github.com/golang/mock/mockgen -destination=mock_video_repository.go -package=mocks github.com/bionicotaku/lingo-services-media/internal/services VideoRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_outbox_enqueuer.go -package=mocks github.com/bionicotaku/lingo-services-media/internal/services OutboxEnqueuer
//go:generate go run github.com/golang/mock/mockgen -destination=mock_media_resource_gateway.go -package=mocks github.com/bionicotaku/lingo-services-media/internal/services MediaResourceGateway
//go:generate go run github.com/golang/mock/mockgen -destination=mock_reference_gateway.go -package=mocks github.com/bionicotaku/lingo-services-media/internal/services ReferenceGateway
//go:generate go run github.com/golang/mock/mockgen -destination=mock_video_gateway.go -package=mocks github.com/bionicotaku/lingo-services-media/internal/services VideoGateway
//go:generate go run github.com/golang/mock/mockgen -destination=mock_video_session_store.go -package=mocks github.com/bionicotaku/lingo-services-media/internal/services VideoSessionStore
//go:generate go run github.com/golang/mock/mockgen -destination=mock_usecases.go -package=mocks github.com/bionicotaku/lingo-services-media/internal/services CreateVideoUsecase,UpdateVideoUsecase,VideoQueryUsecase,MediaStatusUsecase
