// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package reply

// RFC 2812 section 5 numerics.
const (
	RPL_WELCOME           Code = 1
	RPL_YOURHOST          Code = 2
	RPL_CREATED           Code = 3
	RPL_MYINFO            Code = 4
	RPL_BOUNCE            Code = 5
	RPL_TRACELINK         Code = 200
	RPL_TRACECONNECTING   Code = 201
	RPL_TRACEHANDSHAKE    Code = 202
	RPL_TRACEUNKNOWN      Code = 203
	RPL_TRACEOPERATOR     Code = 204
	RPL_TRACEUSER         Code = 205
	RPL_TRACESERVER       Code = 206
	RPL_TRACESERVICE      Code = 207
	RPL_TRACENEWTYPE      Code = 208
	RPL_TRACECLASS        Code = 209
	RPL_TRACERECONNECT    Code = 210
	RPL_STATSLINKINFO     Code = 211
	RPL_STATSCOMMANDS     Code = 212
	RPL_ENDOFSTATS        Code = 219
	RPL_UMODEIS           Code = 221
	RPL_SERVLIST          Code = 234
	RPL_SERVLISTEND       Code = 235
	RPL_STATSUPTIME       Code = 242
	RPL_STATSOLINE        Code = 243
	RPL_LUSERCLIENT       Code = 251
	RPL_LUSEROP           Code = 252
	RPL_LUSERUNKNOWN      Code = 253
	RPL_LUSERCHANNELS     Code = 254
	RPL_LUSERME           Code = 255
	RPL_ADMINME           Code = 256
	RPL_ADMINLOC1         Code = 257
	RPL_ADMINLOC2         Code = 258
	RPL_ADMINEMAIL        Code = 259
	RPL_TRACELOG          Code = 261
	RPL_TRACEEND          Code = 262
	RPL_TRYAGAIN          Code = 263
	RPL_AWAY              Code = 301
	RPL_USERHOST          Code = 302
	RPL_ISON              Code = 303
	RPL_UNAWAY            Code = 305
	RPL_NOWAWAY           Code = 306
	RPL_WHOISUSER         Code = 311
	RPL_WHOISSERVER       Code = 312
	RPL_WHOISOPERATOR     Code = 313
	RPL_WHOWASUSER        Code = 314
	RPL_ENDOFWHO          Code = 315
	RPL_WHOISIDLE         Code = 317
	RPL_ENDOFWHOIS        Code = 318
	RPL_WHOISCHANNELS     Code = 319
	RPL_LISTSTART         Code = 321
	RPL_LIST              Code = 322
	RPL_LISTEND           Code = 323
	RPL_CHANNELMODEIS     Code = 324
	RPL_UNIQOPIS          Code = 325
	RPL_NOTOPIC           Code = 331
	RPL_TOPIC             Code = 332
	RPL_INVITING          Code = 341
	RPL_SUMMONING         Code = 342
	RPL_INVITELIST        Code = 346
	RPL_ENDOFINVITELIST   Code = 347
	RPL_EXCEPTLIST        Code = 348
	RPL_ENDOFEXCEPTLIST   Code = 349
	RPL_VERSION           Code = 351
	RPL_WHOREPLY          Code = 352
	RPL_NAMREPLY          Code = 353
	RPL_LINKS             Code = 364
	RPL_ENDOFLINKS        Code = 365
	RPL_ENDOFNAMES        Code = 366
	RPL_BANLIST           Code = 367
	RPL_ENDOFBANLIST      Code = 368
	RPL_ENDOFWHOWAS       Code = 369
	RPL_INFO              Code = 371
	RPL_MOTD              Code = 372
	RPL_ENDOFINFO         Code = 374
	RPL_MOTDSTART         Code = 375
	RPL_ENDOFMOTD         Code = 376
	RPL_YOUREOPER         Code = 381
	RPL_REHASHING         Code = 382
	RPL_YOURESERVICE      Code = 383
	RPL_TIME              Code = 391
	RPL_USERSSTART        Code = 392
	RPL_USERS             Code = 393
	RPL_ENDOFUSERS        Code = 394
	RPL_NOUSERS           Code = 395
	ERR_NOSUCHNICK        Code = 401
	ERR_NOSUCHSERVER      Code = 402
	ERR_NOSUCHCHANNEL     Code = 403
	ERR_CANNOTSENDTOCHAN  Code = 404
	ERR_TOOMANYCHANNELS   Code = 405
	ERR_WASNOSUCHNICK     Code = 406
	ERR_TOOMANYTARGETS    Code = 407
	ERR_NOSUCHSERVICE     Code = 408
	ERR_NOORIGIN          Code = 409
	ERR_NORECIPIENT       Code = 411
	ERR_NOTEXTTOSEND      Code = 412
	ERR_NOTOPLEVEL        Code = 413
	ERR_WILDTOPLEVEL      Code = 414
	ERR_BADMASK           Code = 415
	ERR_UNKNOWNCOMMAND    Code = 421
	ERR_NOMOTD            Code = 422
	ERR_NOADMININFO       Code = 423
	ERR_FILEERROR         Code = 424
	ERR_NONICKNAMEGIVEN   Code = 431
	ERR_ERRONEUSNICKNAME  Code = 432
	ERR_NICKNAMEINUSE     Code = 433
	ERR_NICKCOLLISION     Code = 436
	ERR_UNAVAILRESOURCE   Code = 437
	ERR_USERNOTINCHANNEL  Code = 441
	ERR_NOTONCHANNEL      Code = 442
	ERR_USERONCHANNEL     Code = 443
	ERR_NOLOGIN           Code = 444
	ERR_SUMMONDISABLED    Code = 445
	ERR_USERSDISABLED     Code = 446
	ERR_NOTREGISTERED     Code = 451
	ERR_NEEDMOREPARAMS    Code = 461
	ERR_ALREADYREGISTRED  Code = 462
	ERR_NOPERMFORHOST     Code = 463
	ERR_PASSWDMISMATCH    Code = 464
	ERR_YOUREBANNEDCREEP  Code = 465
	ERR_YOUWILLBEBANNED   Code = 466
	ERR_KEYSET            Code = 467
	ERR_CHANNELISFULL     Code = 471
	ERR_UNKNOWNMODE       Code = 472
	ERR_INVITEONLYCHAN    Code = 473
	ERR_BANNEDFROMCHAN    Code = 474
	ERR_BADCHANNELKEY     Code = 475
	ERR_BADCHANMASK       Code = 476
	ERR_NOCHANMODES       Code = 477
	ERR_BANLISTFULL       Code = 478
	ERR_NOPRIVILEGES      Code = 481
	ERR_CHANOPRIVSNEEDED  Code = 482
	ERR_CANTKILLSERVER    Code = 483
	ERR_RESTRICTED        Code = 484
	ERR_UNIQOPPRIVSNEEDED Code = 485
	ERR_NOOPERHOST        Code = 491
	ERR_UMODEUNKNOWNFLAG  Code = 501
	ERR_USERSDONTMATCH    Code = 502
)

var names = map[Code]string{
	RPL_WELCOME:           "RPL_WELCOME",
	RPL_YOURHOST:          "RPL_YOURHOST",
	RPL_CREATED:           "RPL_CREATED",
	RPL_MYINFO:            "RPL_MYINFO",
	RPL_BOUNCE:            "RPL_BOUNCE",
	RPL_TRACELINK:         "RPL_TRACELINK",
	RPL_TRACECONNECTING:   "RPL_TRACECONNECTING",
	RPL_TRACEHANDSHAKE:    "RPL_TRACEHANDSHAKE",
	RPL_TRACEUNKNOWN:      "RPL_TRACEUNKNOWN",
	RPL_TRACEOPERATOR:     "RPL_TRACEOPERATOR",
	RPL_TRACEUSER:         "RPL_TRACEUSER",
	RPL_TRACESERVER:       "RPL_TRACESERVER",
	RPL_TRACESERVICE:      "RPL_TRACESERVICE",
	RPL_TRACENEWTYPE:      "RPL_TRACENEWTYPE",
	RPL_TRACECLASS:        "RPL_TRACECLASS",
	RPL_TRACERECONNECT:    "RPL_TRACERECONNECT",
	RPL_STATSLINKINFO:     "RPL_STATSLINKINFO",
	RPL_STATSCOMMANDS:     "RPL_STATSCOMMANDS",
	RPL_ENDOFSTATS:        "RPL_ENDOFSTATS",
	RPL_UMODEIS:           "RPL_UMODEIS",
	RPL_SERVLIST:          "RPL_SERVLIST",
	RPL_SERVLISTEND:       "RPL_SERVLISTEND",
	RPL_STATSUPTIME:       "RPL_STATSUPTIME",
	RPL_STATSOLINE:        "RPL_STATSOLINE",
	RPL_LUSERCLIENT:       "RPL_LUSERCLIENT",
	RPL_LUSEROP:           "RPL_LUSEROP",
	RPL_LUSERUNKNOWN:      "RPL_LUSERUNKNOWN",
	RPL_LUSERCHANNELS:     "RPL_LUSERCHANNELS",
	RPL_LUSERME:           "RPL_LUSERME",
	RPL_ADMINME:           "RPL_ADMINME",
	RPL_ADMINLOC1:         "RPL_ADMINLOC1",
	RPL_ADMINLOC2:         "RPL_ADMINLOC2",
	RPL_ADMINEMAIL:        "RPL_ADMINEMAIL",
	RPL_TRACELOG:          "RPL_TRACELOG",
	RPL_TRACEEND:          "RPL_TRACEEND",
	RPL_TRYAGAIN:          "RPL_TRYAGAIN",
	RPL_AWAY:              "RPL_AWAY",
	RPL_USERHOST:          "RPL_USERHOST",
	RPL_ISON:              "RPL_ISON",
	RPL_UNAWAY:            "RPL_UNAWAY",
	RPL_NOWAWAY:           "RPL_NOWAWAY",
	RPL_WHOISUSER:         "RPL_WHOISUSER",
	RPL_WHOISSERVER:       "RPL_WHOISSERVER",
	RPL_WHOISOPERATOR:     "RPL_WHOISOPERATOR",
	RPL_WHOWASUSER:        "RPL_WHOWASUSER",
	RPL_ENDOFWHO:          "RPL_ENDOFWHO",
	RPL_WHOISIDLE:         "RPL_WHOISIDLE",
	RPL_ENDOFWHOIS:        "RPL_ENDOFWHOIS",
	RPL_WHOISCHANNELS:     "RPL_WHOISCHANNELS",
	RPL_LISTSTART:         "RPL_LISTSTART",
	RPL_LIST:              "RPL_LIST",
	RPL_LISTEND:           "RPL_LISTEND",
	RPL_CHANNELMODEIS:     "RPL_CHANNELMODEIS",
	RPL_UNIQOPIS:          "RPL_UNIQOPIS",
	RPL_NOTOPIC:           "RPL_NOTOPIC",
	RPL_TOPIC:             "RPL_TOPIC",
	RPL_INVITING:          "RPL_INVITING",
	RPL_SUMMONING:         "RPL_SUMMONING",
	RPL_INVITELIST:        "RPL_INVITELIST",
	RPL_ENDOFINVITELIST:   "RPL_ENDOFINVITELIST",
	RPL_EXCEPTLIST:        "RPL_EXCEPTLIST",
	RPL_ENDOFEXCEPTLIST:   "RPL_ENDOFEXCEPTLIST",
	RPL_VERSION:           "RPL_VERSION",
	RPL_WHOREPLY:          "RPL_WHOREPLY",
	RPL_NAMREPLY:          "RPL_NAMREPLY",
	RPL_LINKS:             "RPL_LINKS",
	RPL_ENDOFLINKS:        "RPL_ENDOFLINKS",
	RPL_ENDOFNAMES:        "RPL_ENDOFNAMES",
	RPL_BANLIST:           "RPL_BANLIST",
	RPL_ENDOFBANLIST:      "RPL_ENDOFBANLIST",
	RPL_ENDOFWHOWAS:       "RPL_ENDOFWHOWAS",
	RPL_INFO:              "RPL_INFO",
	RPL_MOTD:              "RPL_MOTD",
	RPL_ENDOFINFO:         "RPL_ENDOFINFO",
	RPL_MOTDSTART:         "RPL_MOTDSTART",
	RPL_ENDOFMOTD:         "RPL_ENDOFMOTD",
	RPL_YOUREOPER:         "RPL_YOUREOPER",
	RPL_REHASHING:         "RPL_REHASHING",
	RPL_YOURESERVICE:      "RPL_YOURESERVICE",
	RPL_TIME:              "RPL_TIME",
	RPL_USERSSTART:        "RPL_USERSSTART",
	RPL_USERS:             "RPL_USERS",
	RPL_ENDOFUSERS:        "RPL_ENDOFUSERS",
	RPL_NOUSERS:           "RPL_NOUSERS",
	ERR_NOSUCHNICK:        "ERR_NOSUCHNICK",
	ERR_NOSUCHSERVER:      "ERR_NOSUCHSERVER",
	ERR_NOSUCHCHANNEL:     "ERR_NOSUCHCHANNEL",
	ERR_CANNOTSENDTOCHAN:  "ERR_CANNOTSENDTOCHAN",
	ERR_TOOMANYCHANNELS:   "ERR_TOOMANYCHANNELS",
	ERR_WASNOSUCHNICK:     "ERR_WASNOSUCHNICK",
	ERR_TOOMANYTARGETS:    "ERR_TOOMANYTARGETS",
	ERR_NOSUCHSERVICE:     "ERR_NOSUCHSERVICE",
	ERR_NOORIGIN:          "ERR_NOORIGIN",
	ERR_NORECIPIENT:       "ERR_NORECIPIENT",
	ERR_NOTEXTTOSEND:      "ERR_NOTEXTTOSEND",
	ERR_NOTOPLEVEL:        "ERR_NOTOPLEVEL",
	ERR_WILDTOPLEVEL:      "ERR_WILDTOPLEVEL",
	ERR_BADMASK:           "ERR_BADMASK",
	ERR_UNKNOWNCOMMAND:    "ERR_UNKNOWNCOMMAND",
	ERR_NOMOTD:            "ERR_NOMOTD",
	ERR_NOADMININFO:       "ERR_NOADMININFO",
	ERR_FILEERROR:         "ERR_FILEERROR",
	ERR_NONICKNAMEGIVEN:   "ERR_NONICKNAMEGIVEN",
	ERR_ERRONEUSNICKNAME:  "ERR_ERRONEUSNICKNAME",
	ERR_NICKNAMEINUSE:     "ERR_NICKNAMEINUSE",
	ERR_NICKCOLLISION:     "ERR_NICKCOLLISION",
	ERR_UNAVAILRESOURCE:   "ERR_UNAVAILRESOURCE",
	ERR_USERNOTINCHANNEL:  "ERR_USERNOTINCHANNEL",
	ERR_NOTONCHANNEL:      "ERR_NOTONCHANNEL",
	ERR_USERONCHANNEL:     "ERR_USERONCHANNEL",
	ERR_NOLOGIN:           "ERR_NOLOGIN",
	ERR_SUMMONDISABLED:    "ERR_SUMMONDISABLED",
	ERR_USERSDISABLED:     "ERR_USERSDISABLED",
	ERR_NOTREGISTERED:     "ERR_NOTREGISTERED",
	ERR_NEEDMOREPARAMS:    "ERR_NEEDMOREPARAMS",
	ERR_ALREADYREGISTRED:  "ERR_ALREADYREGISTRED",
	ERR_NOPERMFORHOST:     "ERR_NOPERMFORHOST",
	ERR_PASSWDMISMATCH:    "ERR_PASSWDMISMATCH",
	ERR_YOUREBANNEDCREEP:  "ERR_YOUREBANNEDCREEP",
	ERR_YOUWILLBEBANNED:   "ERR_YOUWILLBEBANNED",
	ERR_KEYSET:            "ERR_KEYSET",
	ERR_CHANNELISFULL:     "ERR_CHANNELISFULL",
	ERR_UNKNOWNMODE:       "ERR_UNKNOWNMODE",
	ERR_INVITEONLYCHAN:    "ERR_INVITEONLYCHAN",
	ERR_BANNEDFROMCHAN:    "ERR_BANNEDFROMCHAN",
	ERR_BADCHANNELKEY:     "ERR_BADCHANNELKEY",
	ERR_BADCHANMASK:       "ERR_BADCHANMASK",
	ERR_NOCHANMODES:       "ERR_NOCHANMODES",
	ERR_BANLISTFULL:       "ERR_BANLISTFULL",
	ERR_NOPRIVILEGES:      "ERR_NOPRIVILEGES",
	ERR_CHANOPRIVSNEEDED:  "ERR_CHANOPRIVSNEEDED",
	ERR_CANTKILLSERVER:    "ERR_CANTKILLSERVER",
	ERR_RESTRICTED:        "ERR_RESTRICTED",
	ERR_UNIQOPPRIVSNEEDED: "ERR_UNIQOPPRIVSNEEDED",
	ERR_NOOPERHOST:        "ERR_NOOPERHOST",
	ERR_UMODEUNKNOWNFLAG:  "ERR_UMODEUNKNOWNFLAG",
	ERR_USERSDONTMATCH:    "ERR_USERSDONTMATCH",
}
