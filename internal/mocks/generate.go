package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/user --output domain/user --outpkg usermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/lookup --output domain/lookup --outpkg lookupmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayerRepository --dir ../domain/advertisement --output domain/advertisement --outpkg advertisementmock --filename player_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ClubRepository --dir ../domain/advertisement --output domain/advertisement --outpkg advertisementmock --filename club_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ClubOfferRepository --dir ../domain/offer --output domain/offer --outpkg offermock --filename club_offer_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayerOfferRepository --dir ../domain/offer --output domain/offer --outpkg offermock --filename player_offer_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/clubhistory --output domain/clubhistory --outpkg clubhistorymock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/chat --output domain/chat --outpkg chatmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name MessageRepository --dir ../domain/chat --output domain/chat --outpkg chatmock --filename message_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/favorite --output domain/favorite --outpkg favoritemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/problem --output domain/problem --outpkg problemmock --filename repository_mock.go
